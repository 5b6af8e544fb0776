package erl

type processOpts struct {
	mailboxCapacity int
}

type ProcessOpt func(opts *processOpts)

// WithMailboxCapacity bounds the mailbox. Deliveries to a full mailbox fail
// with [mailbox.ErrFull]. A capacity <= 0 is unbounded, the default.
func WithMailboxCapacity(capacity int) ProcessOpt {
	return func(opts *processOpts) {
		opts.mailboxCapacity = capacity
	}
}

func defaultOpts() *processOpts {
	return &processOpts{}
}
