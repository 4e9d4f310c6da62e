package input

import (
	"vimlearn/internal/domain/entities"
	"vimlearn/internal/ports/output"
)

type KeyUseCase interface {
	HandleKey(ev *entities.KeyEvent)
	Attach(src output.KeySource)
	Detach()
}
