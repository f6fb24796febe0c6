// Package project inspects the React project being scaffolded: its
// package.json dependencies and its entry file. It only reads; installing
// packages is left to the user.
package project
