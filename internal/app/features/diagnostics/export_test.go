package diagnostics

var Truncate = truncate
