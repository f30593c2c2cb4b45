package blockrand

// Version is the semantic version of the blockrand module, reported by
// the CLI's version subcommand.
const Version = "0.1.0"
