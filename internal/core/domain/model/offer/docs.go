// Package offer contains the offer aggregate: a compensation offer extended
// to a candidate, with a response deadline and a Draft/Sent/terminal
// lifecycle.
package offer
