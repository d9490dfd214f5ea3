// Package role contains the job-role aggregate. A role is a single open
// position; candidates attach to exactly one role and follow its lifecycle.
package role
