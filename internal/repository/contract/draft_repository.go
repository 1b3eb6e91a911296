package contract

import "ai-lifecoach-be/internal/entity"

// DraftRepository holds parse-wizard state between the parse and commit
// steps. Purely in-process; entries expire on their own.
type DraftRepository interface {
	Save(draft *entity.Draft)
	Get(id string) (*entity.Draft, bool)
	Delete(id string)
}
