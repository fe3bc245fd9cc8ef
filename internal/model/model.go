// Package model defines the data structures shared by the sampler core,
// persistence and UI layers.
package model

import "time"

// Path represents a file system path.
type Path string

// Method identifies the inference algorithm that produced a report.
type Method string

const (
	// MethodNPDHMC marks reports produced by the NP-DHMC sampler.
	MethodNPDHMC Method = "np-dhmc"
	// MethodImportance marks reports produced by importance resampling.
	MethodImportance Method = "importance"
)

// ModelInfo describes a registered probabilistic program.
type ModelInfo struct {
	Name        string
	Description string
}

// RunConfig captures the parameters of one inference run.
type RunConfig struct {
	Model         string
	Count         int
	Eps           float64
	LeapfrogSteps int
	BurnIn        int
	Seed          uint64
	Chain         int
}

// Report holds the persisted outcome of one inference run.
type Report struct {
	Method Method
	Config RunConfig
	// Samples are the drawn values, burn-in already discarded.
	Samples []float64
	// LogWeights carries the unnormalized log-weights of importance
	// samples. Empty for NP-DHMC reports.
	LogWeights []float64 `json:",omitempty"`
	// AcceptRatio is the fraction of accepted MH proposals. Zero for
	// importance reports.
	AcceptRatio float64
	Elapsed     time.Duration
}
