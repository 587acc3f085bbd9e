// Package logger is the public API of threadlog. Most users only need to
// import this package.
//
// Every worker goroutine owns one Logger. It registers once and then
// reaches its Logger through the Registry:
//
//	reg := logger.NewRegistry(nil)
//	defer reg.Close()
//
//	go func() {
//	    log := reg.Register("W1")
//	    log.Initialize("logs", "w1.log", logger.InfoLevel, logger.DebugLevel)
//	    ...
//	    reg.Current().Info("fetch").Append("got ").AppendInt(n).Append(" rows").Done()
//	}()
//
// A Logger writes each line to a file and to the console, each with its
// own threshold. ERROR lines go to stderr, everything else to stdout.
// Lines look like
//
//	16.10.2026 09:14:03 INFO fetch: got 12 rows             (file)
//	W1: 16.10.2026 09:14:03 INFO fetch: got 12 rows         (console)
//
// The caller label is left out when it equals the display name, and
// PLAINTEXT lines carry no prefix at all.
//
// Logger and Message are small handles to shared state. Copies share
// the state; Retain and Release (Done for a Message) manage its
// lifetime. Loggers handed out by a Registry are borrowed: the registry
// owns them until Close and releasing a borrowed handle does nothing.
// A Message writes its prefix lazily with the first fragment
// and terminates open lines when its last handle is done, so
//
//	msg := log.Info("load")
//	defer msg.Done()
//
// is the usual pattern for messages built up over several statements.
//
// A goroutine that never registered is served by the first Logger ever
// registered. The package-level Register, Current, Info and friends use
// a default Registry that SetDefault can replace.
package logger
