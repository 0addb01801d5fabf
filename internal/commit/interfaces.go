package commit

import "github.com/mkarev/vault-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/contributor_mock.go -package=mock

// Contributor produces bounded bundles of pending local changes for one data
// type. Implementations are owned by the surrounding session layer; the
// scheduler holds only non-owning references through a [ContributorRegistry].
type Contributor interface {
	// GetContribution returns up to maxEntries pending entries for the
	// contributor's type, or nil when nothing is pending right now.
	// The returned contribution's entry count must never exceed maxEntries.
	// Must be safe to call repeatedly and must not block.
	GetContribution(maxEntries int) *Contribution
}

// ContributorRegistry maps each data type to its contributor. Absence of a
// key is a valid state: the type is simply not registered for sync at the
// moment and contributes nothing. The registry owns none of its values.
type ContributorRegistry map[models.DataType]Contributor
