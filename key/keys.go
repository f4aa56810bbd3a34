// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Participant Endpoints - these keys locate the two remote-controlled players.
const (
	MasterURL = "master.url"
	SlaveURL  = "slave.url"
)

// Player Authentication - the shared secret accepted by both remote-control interfaces.
const (
	PlayersPassword = "players.password"
)

// Synchronization Policy - these keys tune the drift-correction behavior.
const (
	SyncTolerance  = "sync.tolerance"
	SyncLead       = "sync.lead"
	SyncAttempts   = "sync.attempts"
	SyncRetryDelay = "sync.retry_delay"
)

// Playback Pacing - settle windows granted to the players after commands.
const (
	PlayerCommandDelay = "player.command_delay"
	PlayerSettleDelay  = "player.settle_delay"
	PlayerSkipStep     = "player.skip_step"
)

// Control Endpoint - these keys configure the HTTP server exposing intents.
const (
	ServerHost = "server.host"
	ServerPort = "server.port"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
	LogsTrail = "logs.trail"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment - these flags and settings govern terminal output behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
