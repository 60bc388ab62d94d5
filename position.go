package carteira

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the instrument behind a position. It is a closed set: the
// computation is identical for all kinds, only the default tax treatment
// differs.
type Kind int

const (
	// CDB is a bank certificate of deposit, fully taxed.
	CDB Kind = iota
	// LCI is a real-estate letter of credit, tax exempt for individuals.
	LCI
	// LCA is an agribusiness letter of credit, tax exempt for individuals.
	LCA
	// Tesouro is a treasury bond, fully taxed.
	Tesouro
	// Poupanca is a savings account, tax exempt.
	Poupanca
	// Outro is any other CDI-indexed instrument, fully taxed.
	Outro
)

func (k Kind) String() string {
	switch k {
	case CDB:
		return "cdb"
	case LCI:
		return "lci"
	case LCA:
		return "lca"
	case Tesouro:
		return "tesouro"
	case Poupanca:
		return "poupanca"
	case Outro:
		return "outro"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cdb":
		return CDB, nil
	case "lci":
		return LCI, nil
	case "lca":
		return LCA, nil
	case "tesouro":
		return Tesouro, nil
	case "poupanca":
		return Poupanca, nil
	case "outro":
		return Outro, nil
	default:
		return 0, fmt.Errorf("unknown position kind: %q", s)
	}
}

// DefaultExempt reports whether positions of this kind are withholding-exempt
// by default.
func (k Kind) DefaultExempt() bool {
	return k == LCI || k == LCA || k == Poupanca
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *Kind) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Position is a single fixed-income holding. It is immutable once recorded;
// the only lifecycle operation is removal from the book.
type Position struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	// Principal is the amount deposited, in BRL.
	Principal float64 `json:"principal"`
	// Multiplier scales the reference rate, in percent: 100 tracks the CDI
	// exactly, 110 yields 10% above it.
	Multiplier float64 `json:"multiplier"`
	Deposit    Date    `json:"deposit"`
	Maturity   Date    `json:"maturity,omitempty"`
	// Exempt suppresses both withholding taxes.
	Exempt bool `json:"exempt"`
}

// NewPosition records a holding, applying the kind's default tax treatment.
func NewPosition(name string, kind Kind, principal, multiplier float64, deposit Date) Position {
	return Position{
		Name:       name,
		Kind:       kind,
		Principal:  principal,
		Multiplier: multiplier,
		Deposit:    deposit,
		Exempt:     kind.DefaultExempt(),
	}
}
