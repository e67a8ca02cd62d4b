// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run describes one execution of the job list: where it ran, which
// converter it used and how every job ended.
type Run struct {
	// ID is assigned when the run is recorded in the history database.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	BaseDir string `json:"base_dir" yaml:"base_dir"`
	Tool    string `json:"tool" yaml:"tool"`

	// Outcomes are in job order.
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Counts returns the number of converted and not-converted jobs.
func (r Run) Counts() (converted, failed int) {
	for _, o := range r.Outcomes {
		if o.OK() {
			converted++
		} else {
			failed++
		}
	}
	return converted, failed
}
