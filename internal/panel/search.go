package panel

import "strings"

const (
	// SubmitKey is the only key that submits the search field.
	SubmitKey = "enter"

	// SearchPlaceholder is shown while the search field is empty.
	SearchPlaceholder = "SEARCH FOR BLOCK NUMBERS OR TX HASHES"

	// DebugErrorMessage is carried by the debug fault-injection command.
	DebugErrorMessage = "You found a secret!"

	debugKeyword = "error"
)

// SearchInput is the text currently typed into the search field. Only
// SearchDispatcher writes it.
type SearchInput struct {
	value string
}

func (s SearchInput) Value() string { return s.value }

// SearchDispatcher owns the search field and decides which command a
// submission produces.
type SearchDispatcher struct {
	input SearchInput
}

// Change replaces the field with the raw editor text, untrimmed.
func (d *SearchDispatcher) Change(raw string) {
	d.input.value = raw
}

func (d *SearchDispatcher) Value() string {
	return d.input.value
}

// Submit returns the command for the current text and clears the field.
// "error", compared after trimming and case-insensitively, is reserved for
// the debug fault-injection command. Anything else, including an empty
// string, becomes a search query.
func (d *SearchDispatcher) Submit() Command {
	value := strings.TrimSpace(d.input.value)
	d.input.value = ""
	if strings.ToLower(value) == debugKeyword {
		return injectDebugError(DebugErrorMessage)
	}
	return searchQuery(value)
}
