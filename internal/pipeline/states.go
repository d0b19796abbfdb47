package pipeline

// reqState tracks a request through the stage sequence. FAILED absorbs from
// every state and has no outgoing transitions.
type reqState string

const (
	stateReceived      reqState = "received"
	stateValidated     reqState = "validated"
	stateModelReady    reqState = "model_ready"
	statePreprocessed  reqState = "preprocessed"
	stateEncoded       reqState = "encoded"
	stateInferred      reqState = "inferred"
	stateDecoded       reqState = "decoded"
	statePostprocessed reqState = "postprocessed"
	stateCompleted     reqState = "completed"
	stateFailed        reqState = "failed"
)

var nextState = map[reqState]reqState{
	stateReceived:      stateValidated,
	stateValidated:     stateModelReady,
	stateModelReady:    statePreprocessed,
	statePreprocessed:  stateEncoded,
	stateEncoded:       stateInferred,
	stateInferred:      stateDecoded,
	stateDecoded:       statePostprocessed,
	statePostprocessed: stateCompleted,
}

// request is the per-call state record. Not shared across goroutines.
type request struct {
	direction string
	state     reqState
}

func newRequest(direction string) *request {
	return &request{direction: direction, state: stateReceived}
}

// advance moves to the next stage in order. Panics on an out-of-order
// transition, which would be a sequencing bug in Translate itself.
func (r *request) advance() {
	if r.state == stateFailed {
		panic("pipeline: advance after failure")
	}
	next, ok := nextState[r.state]
	if !ok {
		panic("pipeline: advance past " + string(r.state))
	}
	r.state = next
}

// fail moves to the absorbing failed state, from anywhere.
func (r *request) fail() { r.state = stateFailed }
