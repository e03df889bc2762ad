package gobag

// Version is the release of the gobag module reported by the bagdemo CLI.
const Version = "0.1.0"
