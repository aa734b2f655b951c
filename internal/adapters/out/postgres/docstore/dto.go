package docstore

import (
	"encoding/json"

	"github.com/google/uuid"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// DocumentDTO is the relational shape of one schema-less document. The seq
// column is a server-assigned bigserial used only to reproduce store arrival
// order; it never leaves this package.
type DocumentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Collection string    `gorm:"index;not null"`
	Fields     []byte    `gorm:"type:jsonb;not null"`
	Seq        int64     `gorm:"type:bigserial;uniqueIndex;autoIncrement"`
}

// TableName overrides GORM's default naming to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

func fromFields(collection string, key kernel.UUID, fields map[string]any) (DocumentDTO, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return DocumentDTO{}, errs.NewValueIsInvalidErrorWithCause("fields", err)
	}

	return DocumentDTO{
		ID:         key.Bytes(),
		Collection: collection,
		Fields:     raw,
	}, nil
}

func toDocument(dto DocumentDTO) (ports.Document, error) {
	key, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Document{}, err
	}

	fields := make(map[string]any)
	if err = json.Unmarshal(dto.Fields, &fields); err != nil {
		return ports.Document{}, errs.NewValueIsInvalidErrorWithCause("fields", err)
	}

	return ports.Document{Key: key, Fields: fields}, nil
}
