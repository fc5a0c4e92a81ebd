package resp2

// Version is the current version of the resp2 library.
const Version = "0.1.0"
