package store

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/entity"
	"github.com/bnb-chain/subgraph-store/util"
)

// Block builds the block `name` of entity `id` from its stored hash and number, which must either
// both be null or both be set.
func Block(id, name string, hash []byte, number *db.Decimal) (*entity.EthereumBlock, error) {
	switch {
	case hash != nil && number != nil:
		if len(hash) != common.HashLength {
			return nil, constraintViolation(id, name,
				"the block hash %#x for %s in %s is %d bytes long, not %d", hash, name, id, len(hash), common.HashLength)
		}
		n, ok := util.DecimalToUint64(number.String())
		if !ok {
			return nil, constraintViolation(id, name,
				"the block number %s for %s in %s is not representable as a u64", number, name, id)
		}
		return entity.NewEthereumBlock(common.BytesToHash(hash), n), nil
	case hash == nil && number == nil:
		return nil, nil
	default:
		return nil, constraintViolation(id, name,
			"the hash and number of a block pointer must either both be null or both have a value, "+
				"but for `%s` the hash of %s is `%s` and the number is `%s`", id, name, fmtHash(hash), fmtDecimal(number))
	}
}

func fmtHash(hash []byte) string {
	if hash == nil {
		return "null"
	}
	return hexutil.Encode(hash)
}

func fmtDecimal(d *db.Decimal) string {
	if d == nil {
		return "null"
	}
	return d.String()
}
