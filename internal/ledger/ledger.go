// Package ledger implements the state store of the finance tracker.
//
// The Ledger owns the transaction list, the budget map and the monthly
// income figure. All mutations are validated, applied in memory and then
// persisted best-effort: a failing store never rolls back a mutation.
package ledger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Keys used with the persistence collaborator.
const (
	keyTransactions  = "transactions"
	keyBudgets       = "budgets"
	keyMonthlyIncome = "monthlyIncome"
)

// Ledger is the single owner of all persisted state.
//
// Mutations are serialized with a mutex since the HTTP layer serves
// requests concurrently.
type Ledger struct {
	mu    sync.Mutex
	store storage.Store

	// transactions is ordered most-recent-first by insertion
	transactions  []models.Transaction
	budgets       models.Budgets
	monthlyIncome decimal.Decimal
	nextID        uint64
}

// New returns a Ledger persisting to store. Call Load before use.
func New(store storage.Store) *Ledger {
	return &Ledger{
		store:         store,
		budgets:       models.Budgets{},
		monthlyIncome: decimal.Zero,
		nextID:        1,
	}
}

// Load reads all state from the store.
//
// Keys that are absent or hold unparsable data fall back to the seeded
// defaults: the sample transactions dated within the month of now, the
// default budget map and the default monthly income. If any default was
// seeded, the full state is persisted immediately. Load never fails,
// store errors are logged and treated as absent data.
func (l *Ledger) Load(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seeded := false

	if !l.read(keyTransactions, &l.transactions) {
		l.transactions = seedTransactions(now)
		seeded = true
	}

	if !l.read(keyBudgets, &l.budgets) {
		l.budgets = models.DefaultBudgets()
		seeded = true
	}

	if !l.read(keyMonthlyIncome, &l.monthlyIncome) {
		l.monthlyIncome = defaultMonthlyIncome()
		seeded = true
	}

	l.nextID = 1
	for _, t := range l.transactions {
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}

	if seeded {
		l.save()
	}
}

// read unmarshals the value for a key into target. It reports whether a
// parsable value existed. Malformed data is treated the same as an
// absent key.
func (l *Ledger) read(key string, target any) bool {
	value, ok, err := l.store.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not read from store, using defaults")
		return false
	}
	if !ok {
		return false
	}

	err = json.Unmarshal([]byte(value), target)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("persisted data is malformed, using defaults")
		return false
	}

	return true
}

// Save persists the full state. On failure the in-memory state is kept
// unchanged and the error is returned as a non-fatal warning.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.save()
}

// save persists the full state. The caller must hold the mutex.
func (l *Ledger) save() error {
	for key, value := range map[string]any{
		keyTransactions:  l.transactions,
		keyBudgets:       l.budgets,
		keyMonthlyIncome: l.monthlyIncome,
	} {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}

		err = l.store.Set(key, string(b))
		if err != nil {
			return err
		}
	}

	return nil
}

// persist writes the state after a mutation. Failures are surfaced as a
// warning only, the mutation stays applied in memory.
func (l *Ledger) persist() {
	err := l.save()
	if err != nil {
		log.Warn().Err(err).Msg("state could not be persisted, changes are kept in memory only")
	}
}

// AddTransaction validates the input, assigns a new unique ID and
// inserts the transaction at the front of the sequence.
func (l *Ledger) AddTransaction(transaction models.Transaction) (models.Transaction, error) {
	err := transaction.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	transaction.ID = l.nextID
	l.nextID++

	l.transactions = append([]models.Transaction{transaction}, l.transactions...)
	l.persist()

	return transaction, nil
}

// EditTransaction validates the input and replaces the transaction
// matching id, preserving the ID and the position in the sequence.
func (l *Ledger) EditTransaction(id uint64, transaction models.Transaction) (models.Transaction, error) {
	err := transaction.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, t := range l.transactions {
		if t.ID == id {
			transaction.ID = id
			l.transactions[i] = transaction
			l.persist()

			return transaction, nil
		}
	}

	return models.Transaction{}, models.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction matching id. Deleting an ID
// that does not exist is a no-op, not an error.
func (l *Ledger) DeleteTransaction(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, t := range l.transactions {
		if t.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			l.persist()

			return
		}
	}
}

// Transaction returns the transaction matching id.
func (l *Ledger) Transaction(id uint64) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range l.transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return models.Transaction{}, models.ErrTransactionNotFound
}

// Transactions returns a snapshot of all transactions, most recent first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions := make([]models.Transaction, len(l.transactions))
	copy(transactions, l.transactions)

	return transactions
}

// SetBudgets replaces the budget map wholesale. Missing categories
// default to 0. A single negative value rejects the whole update,
// leaving the prior map untouched.
func (l *Ledger) SetBudgets(budgets models.Budgets) error {
	err := budgets.Validate()
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.budgets = budgets.Normalize()
	l.persist()

	return nil
}

// Budgets returns a snapshot of the budget map.
func (l *Ledger) Budgets() models.Budgets {
	l.mu.Lock()
	defer l.mu.Unlock()

	budgets := make(models.Budgets, len(l.budgets))
	for category, limit := range l.budgets {
		budgets[category] = limit
	}

	return budgets
}

// SetMonthlyIncome replaces the configured monthly income.
//
// The value is persisted but not consumed by any aggregation, it is kept
// for forward compatibility.
func (l *Ledger) SetMonthlyIncome(income decimal.Decimal) error {
	if income.IsNegative() {
		return models.ErrInvalidIncome
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.monthlyIncome = income
	l.persist()

	return nil
}

// MonthlyIncome returns the configured monthly income.
func (l *Ledger) MonthlyIncome() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.monthlyIncome
}
