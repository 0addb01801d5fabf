package validators

import (
	"context"
	"fmt"

	"github.com/mkarev/vault-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldClientSideID targets the client-generated unique identifier of an entry.
	FieldClientSideID = "client_side_id"

	// FieldUserID targets the owner identifier of a commit request.
	FieldUserID = "user_id"

	// FieldType targets the DataType tag of an entry.
	FieldType = "type"

	// FieldBaseVersion targets the optimistic concurrency version an entry
	// claims to be based on.
	FieldBaseVersion = "base_version"

	// FieldEntries targets the list of entries in a commit request.
	FieldEntries = "entries"
)

// CommitRequestValidator implements the Validator interface for the commit
// payload models: CommitRequest and CommitEntry.
type CommitRequestValidator struct {
}

// NewCommitRequestValidator constructs a new CommitRequestValidator
// and returns it as a Validator interface.
func NewCommitRequestValidator() Validator {
	return &CommitRequestValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.CommitRequest / *models.CommitRequest
//   - models.CommitEntry / *models.CommitEntry
//
// Returns ErrUnsupportedType for any other input type.
func (v *CommitRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CommitRequest:
		return v.validateCommitRequest(ctx, value, fields...)
	case *models.CommitRequest:
		return v.validateCommitRequest(ctx, *value, fields...)
	case models.CommitEntry:
		return v.validateCommitEntry(ctx, value, fields...)
	case *models.CommitEntry:
		return v.validateCommitEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateCommitRequest validates a full commit request.
//
// Default validated fields: UserID, Entries. When FieldEntries is validated,
// each entry is individually checked with validateCommitEntry.
func (v *CommitRequestValidator) validateCommitRequest(ctx context.Context, request models.CommitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEntries}
	}

	for _, field := range fields {
		switch field {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntries:
			if len(request.Entries) == 0 {
				return ErrEmptyEntries
			}
			for i, entry := range request.Entries {
				if err := v.validateCommitEntry(ctx, entry); err != nil {
					return fmt.Errorf("entry #%d: %w", i, err)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateCommitEntry validates a single commit entry.
//
// Default validated fields: ClientSideID, Type, BaseVersion.
func (v *CommitRequestValidator) validateCommitEntry(_ context.Context, entry models.CommitEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientSideID, FieldType, FieldBaseVersion}
	}

	for _, field := range fields {
		switch field {
		case FieldClientSideID:
			if entry.ClientSideID == "" {
				return ErrInvalidClientSideID
			}
		case FieldType:
			if !models.AllDataTypes().Has(entry.Type) {
				return fmt.Errorf("%w: %d", ErrInvalidDataType, entry.Type)
			}
		case FieldBaseVersion:
			if entry.BaseVersion < 0 {
				return ErrInvalidBaseVersion
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
