package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[uuid.UUID]*domain.Merchant
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[uuid.UUID]*domain.Merchant)}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.merchants {
		if existing.Username == m.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *inMemoryMerchantRepo) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.APIKey == apiKey {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.Username == username {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[m.ID]; !ok {
		return fmt.Errorf("merchant not found")
	}
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

// --- Row-lock emulation ---

// lockTable hands out one mutex per logical row key, standing in for
// PostgreSQL's SELECT ... FOR UPDATE. A memTx collects every lock it
// acquires and releases them on Commit/Rollback, so concurrent
// read-modify-write cycles on the same key serialize exactly like they
// would against the real database.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (lt *lockTable) lock(key string, tx pgx.Tx) {
	lt.mu.Lock()
	m, ok := lt.locks[key]
	if !ok {
		m = &sync.Mutex{}
		lt.locks[key] = m
	}
	lt.mu.Unlock()

	m.Lock()
	if mtx, ok := tx.(*memTx); ok {
		mtx.held = append(mtx.held, m)
	} else {
		// No transaction to scope the lock to; release immediately.
		m.Unlock()
	}
}

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{}, nil
}

// memTx is a pgx.Tx that only tracks row locks. Commit and Rollback are
// both release points; the repos apply writes immediately, which is safe
// because every mutation in the engine happens under the row lock.
type memTx struct {
	mu   sync.Mutex
	held []*sync.Mutex
	done bool
}

func (t *memTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) Commit(ctx context.Context) error          { t.release(); return nil }
func (t *memTx) Rollback(ctx context.Context) error        { t.release(); return nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }

// --- In-Memory Balance Repo (merchant treasury) ---

type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[string]*domain.MerchantBalance
	rowLocks *lockTable
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{
		balances: make(map[string]*domain.MerchantBalance),
		rowLocks: newLockTable(),
	}
}

func balanceKey(merchantID uuid.UUID, currency string) string {
	return merchantID.String() + ":" + currency
}

func (r *inMemoryBalanceRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := balanceKey(merchantID, currency)
	if _, ok := r.balances[key]; ok {
		return nil
	}
	now := time.Now().UTC()
	r.balances[key] = &domain.MerchantBalance{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return nil
}

func (r *inMemoryBalanceRepo) Get(ctx context.Context, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[balanceKey(merchantID, currency)]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error) {
	r.rowLocks.lock(balanceKey(merchantID, currency), tx)
	return r.Get(ctx, merchantID, currency)
}

func (r *inMemoryBalanceRepo) Update(ctx context.Context, tx pgx.Tx, balance *domain.MerchantBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := balanceKey(balance.MerchantID, balance.Currency)
	if _, ok := r.balances[key]; !ok {
		return fmt.Errorf("balance not found")
	}
	cp := *balance
	cp.UpdatedAt = time.Now().UTC()
	r.balances[key] = &cp
	return nil
}

// --- In-Memory Treasury Transaction Repo ---

type inMemoryTreasuryTxRepo struct {
	mu      sync.RWMutex
	entries []domain.TreasuryTransaction
}

func newInMemoryTreasuryTxRepo() *inMemoryTreasuryTxRepo {
	return &inMemoryTreasuryTxRepo{}
}

func (r *inMemoryTreasuryTxRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.TreasuryTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryTreasuryTxRepo) List(ctx context.Context, merchantID uuid.UUID, params ports.TreasuryTxListParams) ([]domain.TreasuryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.TreasuryTransaction
	for _, e := range r.entries {
		if e.MerchantID != merchantID {
			continue
		}
		if params.Type != nil && e.Type != *params.Type {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (r *inMemoryTreasuryTxRepo) ExistsForPayout(ctx context.Context, tx pgx.Tx, payoutID uuid.UUID, entryType domain.TreasuryTransactionType) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.PayoutID != nil && *e.PayoutID == payoutID && e.Type == entryType {
			return true, nil
		}
	}
	return false, nil
}

// --- In-Memory Recipient Repo ---

type inMemoryRecipientRepo struct {
	mu         sync.RWMutex
	recipients map[string]*domain.Recipient // keyed by normalized email
}

func newInMemoryRecipientRepo() *inMemoryRecipientRepo {
	return &inMemoryRecipientRepo{recipients: make(map[string]*domain.Recipient)}
}

func (r *inMemoryRecipientRepo) CreateIfAbsent(ctx context.Context, recipient *domain.Recipient) (*domain.Recipient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.recipients[recipient.Email]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *recipient
	r.recipients[recipient.Email] = &cp
	out := cp
	return &out, nil
}

func (r *inMemoryRecipientRepo) GetByEmail(ctx context.Context, email string) (*domain.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recipients[email]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemoryRecipientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.recipients {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryRecipientRepo) Update(ctx context.Context, recipient *domain.Recipient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipients[recipient.Email]; !ok {
		return fmt.Errorf("recipient not found")
	}
	cp := *recipient
	r.recipients[recipient.Email] = &cp
	return nil
}

func (r *inMemoryRecipientRepo) IncrementStats(ctx context.Context, email string, amount int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recipients[email]
	if !ok {
		return fmt.Errorf("recipient not found")
	}
	rec.TotalReceived += amount
	rec.TotalPayouts++
	t := at
	rec.LastPayoutAt = &t
	return nil
}

func (r *inMemoryRecipientRepo) SetAuthToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recipients {
		if rec.ID == id {
			tok := token
			exp := expiresAt
			rec.AuthToken = &tok
			rec.AuthTokenExpiresAt = &exp
			return nil
		}
	}
	return fmt.Errorf("recipient not found")
}

func (r *inMemoryRecipientRepo) ConsumeAuthToken(ctx context.Context, token string, now time.Time) (*domain.Recipient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recipients {
		if rec.AuthToken == nil || *rec.AuthToken != token {
			continue
		}
		if rec.AuthTokenExpiresAt == nil || !rec.AuthTokenExpiresAt.After(now) {
			return nil, nil
		}
		rec.AuthToken = nil
		rec.AuthTokenExpiresAt = nil
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

// --- In-Memory Recipient Balance Repo ---

type inMemoryRecipientBalanceRepo struct {
	mu       sync.RWMutex
	balances map[string]*domain.RecipientBalance
	rowLocks *lockTable
}

func newInMemoryRecipientBalanceRepo() *inMemoryRecipientBalanceRepo {
	return &inMemoryRecipientBalanceRepo{
		balances: make(map[string]*domain.RecipientBalance),
		rowLocks: newLockTable(),
	}
}

func (r *inMemoryRecipientBalanceRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, recipientID uuid.UUID, currency string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := balanceKey(recipientID, currency)
	if _, ok := r.balances[key]; ok {
		return nil
	}
	now := time.Now().UTC()
	r.balances[key] = &domain.RecipientBalance{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Currency:    currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return nil
}

func (r *inMemoryRecipientBalanceRepo) Get(ctx context.Context, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[balanceKey(recipientID, currency)]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryRecipientBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error) {
	r.rowLocks.lock(balanceKey(recipientID, currency), tx)
	return r.Get(ctx, recipientID, currency)
}

func (r *inMemoryRecipientBalanceRepo) Update(ctx context.Context, tx pgx.Tx, balance *domain.RecipientBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := balanceKey(balance.RecipientID, balance.Currency)
	if _, ok := r.balances[key]; !ok {
		return fmt.Errorf("balance not found")
	}
	cp := *balance
	cp.UpdatedAt = time.Now().UTC()
	r.balances[key] = &cp
	return nil
}

// --- In-Memory Balance Transaction Repo ---

type inMemoryBalanceTxRepo struct {
	mu      sync.RWMutex
	entries []domain.BalanceTransaction
}

func newInMemoryBalanceTxRepo() *inMemoryBalanceTxRepo {
	return &inMemoryBalanceTxRepo{}
}

func (r *inMemoryBalanceTxRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.BalanceTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryBalanceTxRepo) List(ctx context.Context, recipientID uuid.UUID, limit int) ([]domain.BalanceTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.BalanceTransaction
	for _, e := range r.entries {
		if e.RecipientID == recipientID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Payout Repo ---

type inMemoryPayoutRepo struct {
	mu      sync.Mutex
	payouts map[uuid.UUID]*domain.Payout
}

func newInMemoryPayoutRepo() *inMemoryPayoutRepo {
	return &inMemoryPayoutRepo{payouts: make(map[uuid.UUID]*domain.Payout)}
}

func (r *inMemoryPayoutRepo) Create(ctx context.Context, p *domain.Payout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payouts[p.ID] = &cp
	return nil
}

func (r *inMemoryPayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payouts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPayoutRepo) GetByClaimToken(ctx context.Context, claimToken string) (*domain.Payout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payouts {
		if p.ClaimToken == claimToken {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Claim mirrors the conditional UPDATE: only a payout still in sent
// transitions, and only the first caller wins.
func (r *inMemoryPayoutRepo) Claim(ctx context.Context, id uuid.UUID, recipientWallet, txSignature string, claimedAt time.Time) (*domain.Payout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payouts[id]
	if !ok || p.Status != domain.PayoutStatusSent {
		return nil, nil
	}
	p.Status = domain.PayoutStatusClaimed
	wallet := recipientWallet
	sig := txSignature
	at := claimedAt
	p.RecipientWallet = &wallet
	p.TxSignature = &sig
	p.ClaimedAt = &at
	cp := *p
	return &cp, nil
}

func (r *inMemoryPayoutRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payouts[id]
	if !ok || p.Status != domain.PayoutStatusSent {
		return false, nil
	}
	p.Status = status
	t := at
	p.ExpiredAt = &t
	return true, nil
}

func (r *inMemoryPayoutRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]domain.Payout, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Payout
	for _, p := range r.payouts {
		if p.MerchantID == merchantID {
			out = append(out, *p)
		}
	}
	return paginatePayouts(out, limit, offset)
}

func (r *inMemoryPayoutRepo) ListByEmail(ctx context.Context, email string, limit, offset int) ([]domain.Payout, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Payout
	for _, p := range r.payouts {
		if p.Email == email {
			out = append(out, *p)
		}
	}
	return paginatePayouts(out, limit, offset)
}

func paginatePayouts(payouts []domain.Payout, limit, offset int) ([]domain.Payout, int64, error) {
	sort.Slice(payouts, func(i, j int) bool { return payouts[i].CreatedAt.After(payouts[j].CreatedAt) })
	total := int64(len(payouts))
	if offset >= len(payouts) {
		return []domain.Payout{}, total, nil
	}
	payouts = payouts[offset:]
	if limit > 0 && len(payouts) > limit {
		payouts = payouts[:limit]
	}
	return payouts, total, nil
}

// --- In-Memory Batch Repo ---

type inMemoryBatchRepo struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*domain.PayoutBatch
}

func newInMemoryBatchRepo() *inMemoryBatchRepo {
	return &inMemoryBatchRepo{batches: make(map[uuid.UUID]*domain.PayoutBatch)}
}

func (r *inMemoryBatchRepo) Create(ctx context.Context, b *domain.PayoutBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *inMemoryBatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBatchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, totalAmount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return fmt.Errorf("batch not found")
	}
	b.Status = status
	b.TotalAmount = totalAmount
	return nil
}
