package cue

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod = notifyDest + ".Notify"

	appName = "pomodoro"
	summary = "Pomodoro CLI"
	appIcon = "pomodoro"

	// expireNever asks the notification server to keep the popup until the
	// user dismisses it.
	expireNever = int32(0)
)

// DBusNotifier posts notifications through the freedesktop notification
// service on the session bus. The bus connection is opened on first use and
// shared afterwards.
type DBusNotifier struct {
	once    sync.Once
	conn    *dbus.Conn
	connErr error
}

func NewDBusNotifier() *DBusNotifier {
	return &DBusNotifier{}
}

func (n *DBusNotifier) connect() (*dbus.Conn, error) {
	n.once.Do(func() {
		n.conn, n.connErr = dbus.SessionBus()
	})
	return n.conn, n.connErr
}

func (n *DBusNotifier) Notify(ctx context.Context, message string) error {
	conn, err := n.connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object(notifyDest, notifyPath)
	call := obj.CallWithContext(ctx, notifyMethod, 0,
		appName,
		uint32(0), // replaces_id
		appIcon,
		summary,
		message,
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		expireNever,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
