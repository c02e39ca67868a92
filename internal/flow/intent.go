package flow

// Intent is the closed set of abstract inputs the Machine accepts. The
// transport adapter decides the intent from the raw UI event, so the
// Machine itself never matches on button labels.
type Intent int

const (
	IntentText Intent = iota // free text or a keyboard selection
	IntentContact            // shared contact payload
	IntentStart              // begin a fresh session
	IntentCancel             // discard the session from any state
	IntentBack               // one step backwards
	IntentNextPage
	IntentPrevPage
	IntentPageIndicator // inert page-number button
)

// Input is one inbound event routed into the Machine.
type Input struct {
	Intent Intent
	Text   string // selection or free text for IntentText
	Phone  string // contact payload for IntentContact
}

// Message is one outbound prompt. Choices enumerates the keyboard the
// transport should render; a state that defines a choice set always
// carries it here.
type Message struct {
	Text           string
	Choices        [][]string
	ContactButton  bool // render the first button as a contact-share request
	RemoveKeyboard bool
}
