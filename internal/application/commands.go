package application

import "github.com/bnema/ccteam/internal/domain"

type StartCommand struct {
	WorkingDir string
	Config     domain.Config
	Progress   ProgressFunc
}

type StopCommand struct {
	Session    string
	WorkingDir string
}

// SendCommand addresses one message. From is optional; when set the text is
// prefixed with the sender so the receiving agent can tell peers apart.
type SendCommand struct {
	Session domain.SessionName
	From    domain.Role
	To      domain.Role
	Message string
}

type Stage string

const (
	StageCreated    Stage = "created"
	StageLaidOut    Stage = "laid-out"
	StageInstructed Stage = "instructed"
	StageRoleReady  Stage = "role-ready"
)

// Progress reports a completed orchestration stage. Role is set only for
// StageRoleReady.
type Progress struct {
	Stage   Stage
	Session domain.SessionName
	Role    domain.Role
}

type ProgressFunc func(Progress)

type StartResult struct {
	Session      domain.SessionName
	WorkingDir   string
	Instructions map[domain.Role]string
}
