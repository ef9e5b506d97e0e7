// Package commands implements numberfacts-cli, a headless driver for the
// facts screen.
//
// Each command builds the same state, service and controller the app uses,
// performs one fetch the way the screen would, waits for it and prints the
// resulting fact text. The date command without arguments goes through the
// mount path, so it prints today's fact.
//
// The exit status is non-zero when the screen would have shown its fixed
// error text.
package commands
