package embedjs

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Embed JavaScript dependencies into the web backend bundle"
	MsgListShort       = "List the packages that would be embedded"
	MsgListLong        = "List displays every package in the effective registry along with the variable name it is embedded under."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgEmbeddingFormat = "Embedding %s as %s\n"
	MsgDryRunNotice    = "\nDRY RUN MODE - No changes were made"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview the embed without writing the bundle or licenses"
	MsgFlagPackages = "Path to a TOML file listing the packages to embed (defaults to the built-in registry)"
	MsgFlagBundle   = "Bundle file path relative to the web-backend directory"
)

// Long messages
const (
	MsgRootLong = `embedjs embeds third-party JavaScript dependencies directly into the
web backend bundle so the project ships a single self-contained file.

For each registered package it fetches the package via npm when it is
not installed, rewrites its module export into a plain variable
declaration, appends the result after the generated-content marker in
the bundle file, and copies the package license next to the output.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(embedjs completion bash)

Zsh:
  $ embedjs completion zsh > "${fpath[1]}/_embedjs"

Fish:
  $ embedjs completion fish | source

PowerShell:
  PS> embedjs completion powershell | Out-String | Invoke-Expression
`
)
