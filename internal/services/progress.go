package services

// Search pipeline stage reported to progress observers.
type Stage string

const (
	StageCollecting Stage = "collecting"
	StageGenerating Stage = "generating"
	StageScoring    Stage = "scoring"
	StageAdjusting  Stage = "adjusting"
	StageDone       Stage = "done"
)

// Receives stage transitions during a search. Implementations must be fast;
// the engine calls them synchronously from the iteration loop.
type ProgressObserver interface {
	OnProgress(stage Stage, detail string)
}

// ObserverFunc adapts a plain function to ProgressObserver.
type ObserverFunc func(stage Stage, detail string)

func (f ObserverFunc) OnProgress(stage Stage, detail string) { f(stage, detail) }

type noopObserver struct{}

func (noopObserver) OnProgress(Stage, string) {}
