package store

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/entity"
	"github.com/bnb-chain/subgraph-store/types"
)

// ToSubgraphError converts the stored row of a fatal error. The block pointer is derived from the
// start of the error's block range.
func ToSubgraphError(e *db.ErrorDetail) (*entity.SubgraphError, error) {
	subgraphID, err := types.NewDeploymentHash(e.SubgraphID)
	if err != nil {
		return nil, constraintViolation(e.SubgraphID, "subgraph_id",
			"invalid subgraph id `%s` in fatal error", e.SubgraphID)
	}
	if e.BlockHash != nil && len(e.BlockHash) != common.HashLength {
		return nil, constraintViolation(e.SubgraphID, "block_hash",
			"the block hash %#x of error %s is %d bytes long, not %d", e.BlockHash, e.ID, len(e.BlockHash), common.HashLength)
	}

	// Older errors have an unversioned block range, and so no block number, but do have a hash.
	// Others have no hash. Neither gets a block pointer.
	var blockPtr *types.BlockPtr
	if number, ok := e.BlockRange.FirstBlock(); ok && number >= 0 && e.BlockHash != nil {
		blockPtr = types.NewBlockPtr(common.BytesToHash(e.BlockHash), uint64(number))
	}

	return &entity.SubgraphError{
		SubgraphID:    subgraphID,
		Message:       e.Message,
		BlockPtr:      blockPtr,
		Handler:       e.Handler,
		Deterministic: e.Deterministic,
	}, nil
}
