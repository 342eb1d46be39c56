// Package mfd is the navigation runtime of the multi-function display.
//
// A Controller owns a row of applications bound to the top buttons. Each
// Application owns pages bound to the bottom buttons. Every frame the
// controller arranges and renders the active page, draws the two button
// rows and any overlays, then dispatches the input collected since the last
// frame. Keys go to the focused widget first, then the page, and are dropped
// if neither handles them.
package mfd
