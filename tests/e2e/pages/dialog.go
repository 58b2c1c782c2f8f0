package pages

import "time"

// dialogDecision carries one pre-armed accept/dismiss choice from a
// dialog-producing action to the session's dialog handler. Arming
// happens strictly before the triggering click, so the handler never
// races the action.
type dialogDecision struct {
	decision chan bool
	handled  chan string
}

func newDialogDecision() *dialogDecision {
	return &dialogDecision{
		decision: make(chan bool, 1),
		handled:  make(chan string, 1),
	}
}

// arm stores the choice for the next dialog.
func (d *dialogDecision) arm(confirm bool) {
	d.decision <- confirm
}

// consume takes the armed choice, if any. Called by the dialog handler
// and by actions that need to disarm after a failed click.
func (d *dialogDecision) consume() (accept, armed bool) {
	select {
	case a := <-d.decision:
		return a, true
	default:
		return false, false
	}
}

// markHandled records that the armed dialog was acted on.
func (d *dialogDecision) markHandled(message string) {
	d.handled <- message
}

// await blocks until the armed dialog has been handled or the timeout
// elapses. On timeout both channels are drained so stale state cannot
// leak into the next dialog-producing action.
func (d *dialogDecision) await(timeout time.Duration) (string, bool) {
	select {
	case msg := <-d.handled:
		return msg, true
	case <-time.After(timeout):
		select {
		case <-d.decision:
		default:
		}
		select {
		case <-d.handled:
		default:
		}
		return "", false
	}
}
