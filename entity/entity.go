package entity

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bnb-chain/subgraph-store/types"
)

type Health string

const (
	Healthy   Health = "healthy"
	Unhealthy Health = "unhealthy"
	Failed    Health = "failed"
)

// Site is the location of a deployment: which network it indexes and which shard stores it
type Site struct {
	ID         int32
	Deployment types.DeploymentHash
	Network    string
	Shard      string
}

type EthereumBlock struct {
	Hash   common.Hash `json:"hash"`
	Number uint64      `json:"number"`
}

func NewEthereumBlock(hash common.Hash, number uint64) *EthereumBlock {
	return &EthereumBlock{Hash: hash, Number: number}
}

func (b *EthereumBlock) ToPtr() *types.BlockPtr {
	if b == nil {
		return nil
	}
	return types.NewBlockPtr(b.Hash, b.Number)
}

type SubgraphError struct {
	SubgraphID    types.DeploymentHash `json:"subgraph_id"`
	Message       string               `json:"message"`
	BlockPtr      *types.BlockPtr      `json:"block_ptr,omitempty"`
	Handler       *string              `json:"handler,omitempty"`
	Deterministic bool                 `json:"deterministic"`
}

// ChainInfo describes the progress of a deployment on one chain. ChainHeadBlock lives in a
// different shard and is nil until the caller merges it in.
type ChainInfo struct {
	Network        string         `json:"network"`
	ChainHeadBlock *EthereumBlock `json:"chain_head_block"`
	EarliestBlock  *EthereumBlock `json:"earliest_block"`
	LatestBlock    *EthereumBlock `json:"latest_block"`
}

// Info is the indexing status of a deployment. Node is nil until the caller fills in the
// node assignment from the primary shard.
type Info struct {
	Subgraph       string          `json:"subgraph"`
	Synced         bool            `json:"synced"`
	Health         Health          `json:"health"`
	FatalError     *SubgraphError  `json:"fatal_error"`
	NonFatalErrors []SubgraphError `json:"non_fatal_errors"`
	Chains         []ChainInfo     `json:"chains"`
	EntityCount    uint64          `json:"entity_count"`
	Node           *string         `json:"node"`
}

type SubgraphManifestEntity struct {
	SpecVersion string   `json:"spec_version"`
	Description *string  `json:"description,omitempty"`
	Repository  *string  `json:"repository,omitempty"`
	Features    []string `json:"features"`
	Schema      string   `json:"schema"`
}

type SubgraphDeploymentEntity struct {
	Manifest          SubgraphManifestEntity `json:"manifest"`
	Failed            bool                   `json:"failed"`
	Health            Health                 `json:"health"`
	Synced            bool                   `json:"synced"`
	FatalError        *SubgraphError         `json:"fatal_error"`
	NonFatalErrors    []SubgraphError        `json:"non_fatal_errors"`
	EarliestBlock     *types.BlockPtr        `json:"earliest_block"`
	LatestBlock       *types.BlockPtr        `json:"latest_block"`
	GraftBase         *types.DeploymentHash  `json:"graft_base,omitempty"`
	GraftBlock        *types.BlockPtr        `json:"graft_block,omitempty"`
	ReorgCount        int32                  `json:"reorg_count"`
	CurrentReorgDepth int32                  `json:"current_reorg_depth"`
	MaxReorgDepth     int32                  `json:"max_reorg_depth"`
}
