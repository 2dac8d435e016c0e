package domain

// IngestStage identifies a step of the ingestion pipeline.
type IngestStage string

const (
	StageExtract  IngestStage = "extract"
	StageValidate IngestStage = "validate"
	StageClassify IngestStage = "classify"
	StageEmbed    IngestStage = "embed"
	StageIndex    IngestStage = "index"
	StageDone     IngestStage = "done"
	StageFailed   IngestStage = "failed"
)

// IngestStatus is one discrete event of the staged ingestion progress
// stream. The stream is finite: it ends with a StageDone event on
// success or a StageFailed event on the first failing stage.
type IngestStatus struct {
	// Stage is the pipeline step this event reports on.
	Stage IngestStage

	// Message is the user-facing status line for this step.
	Message string

	// Err carries the stage failure when Stage is StageFailed, nil otherwise.
	Err error
}

// Failed reports whether this event terminated the stream with a failure.
func (s IngestStatus) Failed() bool {
	return s.Stage == StageFailed
}

// Done reports whether this event terminated the stream successfully.
func (s IngestStatus) Done() bool {
	return s.Stage == StageDone
}
