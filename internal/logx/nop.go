package logx

// discard drops every entry. With returns the receiver so field chains cost nothing.
type discard struct{}

var nop Logger = discard{}

// Nop returns a Logger that writes nothing. Components default to it when no logger is injected.
func Nop() Logger { return nop }

func (discard) Debug(string, ...Field) {}
func (discard) Info(string, ...Field)  {}
func (discard) Warn(string, ...Field)  {}
func (discard) Error(string, ...Field) {}
func (d discard) With(...Field) Logger { return d }
func (discard) Sync() error            { return nil }
