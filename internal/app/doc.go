// Package app wires the terminal source, decoder, and transcript into a
// runnable session: it enables the terminal reporting modes the
// configuration asks for, prints each decoded event, and stops on the
// configured quit key. It also hosts the application logger.
package app
