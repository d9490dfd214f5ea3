// Package candidate contains the candidate aggregate and the pipeline stage
// state machine. The stage machine is the heart of the recruitment flow:
// every other aggregate (interview, offer) checks the candidate's stage
// before mutating anything.
package candidate
