package figma

// Version is the module release version, reported by the CLI and the
// conversion service.
const Version = "1.1.0"
