package users

import (
	"fmt"
	"io"
	"time"
)

// Notifier delivers messages to users. The console implementation stands
// in for a mail gateway.
type Notifier interface {
	Welcome(user *User) error
	EmailChanged(user *User, previous string) error
}

// AuditLog records what the service did and to whom.
type AuditLog interface {
	Record(username, activity string)
}

// ConsoleNotifier writes notifications to w.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier returns a Notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Welcome(user *User) error {
	_, err := fmt.Fprintf(n.w, "welcome %s <%s>\n", user.Username, user.Email)
	return err
}

func (n *ConsoleNotifier) EmailChanged(user *User, previous string) error {
	_, err := fmt.Fprintf(n.w, "email for %s changed from %s to %s\n", user.Username, previous, user.Email)
	return err
}

// ConsoleAuditLog writes timestamped activity lines to w.
type ConsoleAuditLog struct {
	w io.Writer
}

// NewConsoleAuditLog returns an AuditLog writing to w.
func NewConsoleAuditLog(w io.Writer) *ConsoleAuditLog {
	return &ConsoleAuditLog{w: w}
}

func (l *ConsoleAuditLog) Record(username, activity string) {
	fmt.Fprintf(l.w, "[%s] %s: %s\n", time.Now().Format(time.RFC3339), username, activity)
}
