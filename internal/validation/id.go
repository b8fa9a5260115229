package validation

import (
	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/normalization"
	"github.com/yungbote/bewear-backend/internal/platform/apierr"
)

// ParseID validates a record identifier coming from the client. The field
// name keys the error so the form can attribute it.
func ParseID(field, raw string) (uuid.UUID, apierr.FieldErrors) {
	trimmed := normalization.TrimInputString(raw)
	id, err := uuid.Parse(trimmed)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apierr.FieldErrors{field: "ID inválido."}
	}
	return id, nil
}
