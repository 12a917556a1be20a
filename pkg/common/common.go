package common

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

func node() *snowflake.Node {
	snowflakeOnce.Do(func() {
		var err error
		snowflakeNode, err = snowflake.NewNode(time.Now().UnixNano() % 1023)
		if err != nil {
			panic(err)
		}
	})
	return snowflakeNode
}

// UUIDint64 returns a cluster-unique int64 identifier.
func UUIDint64() int64 {
	return node().Generate().Int64()
}

// UUIDBase32 returns a cluster-unique short string identifier.
func UUIDBase32() string {
	return node().Generate().Base32()
}

// ParseInt64 parses s, returning defval when s is not a decimal integer.
func ParseInt64(s string, defval int64) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return defval
	}
	return v
}

// FileExists reports whether path exists on disk.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
