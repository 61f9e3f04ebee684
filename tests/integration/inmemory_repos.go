package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Player Repo ---

type inMemoryPlayerRepo struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*domain.Player
}

func newInMemoryPlayerRepo() *inMemoryPlayerRepo {
	return &inMemoryPlayerRepo{players: make(map[uuid.UUID]*domain.Player)}
}

func (r *inMemoryPlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.players {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *inMemoryPlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPlayerRepo) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet // keyed by player ID
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.PlayerID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByPlayerID(ctx context.Context, playerID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[playerID]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByPlayerIDForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByPlayerID(ctx, playerID)
}

func (r *inMemoryWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.PlayerID]; !ok {
		return fmt.Errorf("wallet not found")
	}
	cp := *w
	r.wallets[w.PlayerID] = &cp
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) PendingOlderThan(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, cutoff time.Time) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.PlayerID == playerID && t.Status == domain.TransactionStatusPending && t.CreatedAt.Before(cutoff) {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *inMemoryTransactionRepo) Confirm(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, confirmedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		t, ok := r.transactions[id]
		if !ok {
			return fmt.Errorf("transaction not found")
		}
		at := confirmedAt
		t.Status = domain.TransactionStatusConfirmed
		t.ConfirmedAt = &at
	}
	return nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.PlayerID != params.PlayerID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Kind != nil && t.Kind != *params.Kind {
			continue
		}
		if params.From != nil && t.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && t.CreatedAt.Unix() > *params.To {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	total := int64(len(result))

	// Simple pagination
	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Transaction{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

// --- In-Memory Coin Repo ---

type inMemoryCoinRepo struct {
	mu    sync.RWMutex
	coins map[uuid.UUID]*domain.Coin
}

func newInMemoryCoinRepo() *inMemoryCoinRepo {
	return &inMemoryCoinRepo{coins: make(map[uuid.UUID]*domain.Coin)}
}

func (r *inMemoryCoinRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Coin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.coins[c.ID] = &cp
	return nil
}

func (r *inMemoryCoinRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.coins[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryCoinRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Coin, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryCoinRepo) MarkCollected(ctx context.Context, tx pgx.Tx, coinID, collectorID uuid.UUID, value domain.Money, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coins[coinID]
	if !ok {
		return fmt.Errorf("coin not found")
	}
	if c.Status != domain.CoinStatusVisible {
		return fmt.Errorf("coin is not visible")
	}
	v := value
	t := at
	collector := collectorID
	c.Status = domain.CoinStatusCollected
	c.Value = &v
	c.CollectorID = &collector
	c.CollectedAt = &t
	return nil
}

func (r *inMemoryCoinRepo) ConfirmCollected(ctx context.Context, tx pgx.Tx, coinIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range coinIDs {
		c, ok := r.coins[id]
		if !ok {
			continue
		}
		if c.Status == domain.CoinStatusCollected {
			c.Status = domain.CoinStatusConfirmed
		}
	}
	return nil
}

func (r *inMemoryCoinRepo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coins[id]; !ok {
		return fmt.Errorf("coin not found")
	}
	delete(r.coins, id)
	return nil
}

func (r *inMemoryCoinRepo) ListVisible(ctx context.Context, limit int) ([]domain.Coin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Coin
	for _, c := range r.coins {
		if c.Status == domain.CoinStatusVisible {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].HiddenAt.After(result[j].HiddenAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *inMemoryCoinRepo) ListByHider(ctx context.Context, hiderID uuid.UUID) ([]domain.Coin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Coin
	for _, c := range r.coins {
		if c.HiderID == hiderID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// --- In-Memory Progress Repo ---

type inMemoryProgressRepo struct {
	mu     sync.RWMutex
	limits map[uuid.UUID]*domain.FindLimitState
	finds  map[uuid.UUID][]domain.FindRecord // newest first
	stats  map[uuid.UUID]*domain.FindStats
}

func newInMemoryProgressRepo() *inMemoryProgressRepo {
	return &inMemoryProgressRepo{
		limits: make(map[uuid.UUID]*domain.FindLimitState),
		finds:  make(map[uuid.UUID][]domain.FindRecord),
		stats:  make(map[uuid.UUID]*domain.FindStats),
	}
}

func (r *inMemoryProgressRepo) CreateFindLimit(ctx context.Context, state *domain.FindLimitState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *state
	r.limits[state.PlayerID] = &cp
	return nil
}

func (r *inMemoryProgressRepo) GetFindLimit(ctx context.Context, playerID uuid.UUID) (*domain.FindLimitState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.limits[playerID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemoryProgressRepo) GetFindLimitForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.FindLimitState, error) {
	return r.GetFindLimit(ctx, playerID)
}

func (r *inMemoryProgressRepo) UpdateFindLimit(ctx context.Context, tx pgx.Tx, state *domain.FindLimitState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *state
	r.limits[state.PlayerID] = &cp
	return nil
}

func (r *inMemoryProgressRepo) AppendFind(ctx context.Context, tx pgx.Tx, record *domain.FindRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	finds := append([]domain.FindRecord{*record}, r.finds[record.PlayerID]...)
	if len(finds) > domain.HistoryWindow {
		finds = finds[:domain.HistoryWindow]
	}
	r.finds[record.PlayerID] = finds

	s, ok := r.stats[record.PlayerID]
	if !ok {
		s = &domain.FindStats{PlayerID: record.PlayerID}
		r.stats[record.PlayerID] = s
	}
	s.TotalFinds++
	s.TotalValue += record.Value
	return nil
}

func (r *inMemoryProgressRepo) RecentFindValues(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, n int) ([]domain.Money, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	finds := r.finds[playerID]
	if len(finds) > n {
		finds = finds[:n]
	}
	values := make([]domain.Money, 0, len(finds))
	for _, f := range finds {
		values = append(values, f.Value)
	}
	return values, nil
}

func (r *inMemoryProgressRepo) RecentFinds(ctx context.Context, playerID uuid.UUID, n int) ([]domain.FindRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	finds := r.finds[playerID]
	if len(finds) > n {
		finds = finds[:n]
	}
	result := make([]domain.FindRecord, len(finds))
	copy(result, finds)
	return result, nil
}

func (r *inMemoryProgressRepo) GetStats(ctx context.Context, playerID uuid.UUID) (*domain.FindStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stats[playerID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions with a single mutex, standing in
// for the row-level locks a real database would take. Begin blocks until the
// previous transaction commits or rolls back, so read-modify-write sequences
// on wallets and coins behave like SELECT FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{release: &t.mu}, nil
}

// serialTx is a no-op pgx.Tx that holds the transactor's mutex until the
// transaction ends. Commit and Rollback are both safe to call; only the
// first release takes effect.
type serialTx struct {
	once    sync.Once
	release *sync.Mutex
}

func (t *serialTx) done() {
	t.once.Do(t.release.Unlock)
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }
