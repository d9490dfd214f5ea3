// Package interview contains the interview aggregate: one booked interview
// of one candidate, with a kind (phone screen, technical, ...) and a small
// Scheduled/Completed/Canceled lifecycle.
package interview
