package okaara

// Version is the current okaara release.
var Version = "0.4.0"
