package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// BlockPtr references a block by hash and number
type BlockPtr struct {
	Hash   common.Hash `json:"hash"`
	Number uint64      `json:"number"`
}

func NewBlockPtr(hash common.Hash, number uint64) *BlockPtr {
	return &BlockPtr{Hash: hash, Number: number}
}

func (b BlockPtr) String() string {
	return fmt.Sprintf("#%d (%s)", b.Number, b.Hash.Hex())
}
