package solana

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const (
	// TokenProgramId is the spl-token program
	TokenProgramId = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	// MetadataProgramId is the metaplex token-metadata program
	MetadataProgramId = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrEmptyRpcResult  = errors.New("empty rpc result")
)

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	Timeout    time.Duration
}

type rpcRequest struct {
	JsonRpc string        `json:"jsonrpc"`
	Id      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JsonRpc string          `json:"jsonrpc"`
	Id      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}
