package scaffold

// gitignoreContents is written verbatim to the output crate's
// .gitignore, grounded on write_gitignore.rs's literal byte contents.
const gitignoreContents = "/target\nCargo.lock\n"

// Gitignore returns the generated crate's .gitignore contents.
func Gitignore() string {
	return gitignoreContents
}
