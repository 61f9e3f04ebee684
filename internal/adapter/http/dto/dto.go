package dto

// RegisterRequest is the request body for player registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for player login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TopupRequest is the request body for a gas tank topup.
type TopupRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ParkRequest is the request body for parking funds.
type ParkRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// UnparkRequest is the request body for returning parked funds.
type UnparkRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// UnparkResponse reports an unpark outcome: the amount moved out of the
// parked bucket, the gas fee charged and the net amount credited.
type UnparkResponse struct {
	Moved    int64 `json:"moved"`
	Fee      int64 `json:"fee"`
	Credited int64 `json:"credited"`
}

// SettleResponse reports a pending settlement run.
type SettleResponse struct {
	Settled int64 `json:"settled"`
	Count   int   `json:"count"`
}

// WalletResponse is the response for the wallet summary query.
type WalletResponse struct {
	GasTank    int64   `json:"gas_tank"`
	Parked     int64   `json:"parked"`
	Pending    int64   `json:"pending"`
	Total      int64   `json:"total"`
	GasStatus  string  `json:"gas_status"`
	DaysOfGas  int64   `json:"days_of_gas"`
	LastGasDay *string `json:"last_gas_day,omitempty"`
}

// GasRunResponse reports a daily gas consumption run.
type GasRunResponse struct {
	Consumed  int64  `json:"consumed"`
	Ran       bool   `json:"ran"`
	GasStatus string `json:"gas_status"`
}

// TransactionResponse is the response body for a ledger entry.
type TransactionResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Amount        int64   `json:"amount"`
	Status        string  `json:"status"`
	RelatedCoinID *string `json:"related_coin_id,omitempty"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at"`
	ConfirmedAt   *string `json:"confirmed_at,omitempty"`
}

// TransactionListResponse wraps a paginated ledger listing.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// HideRequest is the request body for hiding a coin.
type HideRequest struct {
	Kind         string  `json:"kind" binding:"required,oneof=FIXED POOL"`
	Contribution int64   `json:"contribution" binding:"required,gt=0"`
	Lat          float64 `json:"lat" binding:"min=-90,max=90"`
	Lng          float64 `json:"lng" binding:"min=-180,max=180"`
}

// CollectRequest is the request body for a collection attempt. Lat/Lng is
// the collector's current position.
type CollectRequest struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}

// CoinResponse is the response body for coin queries.
type CoinResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Value        *int64  `json:"value,omitempty"`
	Contribution int64   `json:"contribution"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	HiderID      string  `json:"hider_id"`
	Status       string  `json:"status"`
	HiddenAt     string  `json:"hidden_at"`
}

// CollectResponse is the response body for a successful collection.
type CollectResponse struct {
	Coin        CoinResponse `json:"coin"`
	Value       int64        `json:"value"`
	StreakClass string       `json:"streak_class,omitempty"`
}

// FindRecordResponse is one entry in the recent find history.
type FindRecordResponse struct {
	CoinID    string `json:"coin_id"`
	Value     int64  `json:"value"`
	CreatedAt string `json:"created_at"`
}

// ProgressResponse is the response for the player progress query.
type ProgressResponse struct {
	FindLimit    int64                `json:"find_limit"`
	Tier         string               `json:"tier"`
	TierProgress float64              `json:"tier_progress"`
	RecentFinds  []FindRecordResponse `json:"recent_finds"`
	TotalFinds   int64                `json:"total_finds"`
	TotalValue   int64                `json:"total_value"`
}
