// Package cli implements the interactive TaskPad terminal client: a small
// REPL over the session store and the task service. Command handlers print
// taxonomy messages for API failures and keep the loop alive; nothing
// escapes past the prompt.
package cli
