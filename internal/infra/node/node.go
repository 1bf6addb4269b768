package node

import (
	"net"
	"sync"

	"github.com/google/uuid"
)

// Version and CommitHash are set at build time with -ldflags "-X".
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Node identifies this replica. Consumers that must see every event, such as cache
// invalidation, derive their group from ID.
type Node struct {
	ID         string
	IPAddress  string
	Version    string
	CommitHash string
}

var (
	current     *Node
	currentOnce sync.Once
)

func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		current = &Node{
			ID:         uuid.NewString(),
			IPAddress:  outboundIPAddress(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})

	info := *current
	return &info
}

// outboundIPAddress asks the kernel which local address routes outside. UDP dials send
// nothing, so this works offline.
func outboundIPAddress() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}
