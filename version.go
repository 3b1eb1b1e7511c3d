package secretkit

// Version is the module version reported by the command line tools.
const Version = "0.1.0"
