package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// Only the first call takes effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a time-ordered int64 ID used to correlate one roadmap
// generation across logs and spans. Returns 0 before Init.
func New() int64 {
	if node == nil {
		return 0
	}
	return node.Generate().Int64()
}
