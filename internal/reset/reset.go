package reset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// expectedCollections is the illustrative list shown in the warning banner.
// The actual deletion scope is always whatever the database reports at run
// time; this list is warning text only and does not bind the drop loop.
var expectedCollections = []string{
	"users",
	"courses",
	"assignments",
	"submissions",
	"enrollments",
	"messages",
	"notifications",
}

// Store is the slice of database behavior the reset routine depends on.
type Store interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	DropCollection(ctx context.Context, name string) error
}

// Resetter drops every collection in the target database.
type Resetter struct {
	store    Store
	database string
	out      io.Writer
}

func New(store Store, database string, out io.Writer) *Resetter {
	return &Resetter{
		store:    store,
		database: database,
		out:      out,
	}
}

// Confirm displays the warning banner for the target URI and requires the
// operator to type the literal string YES. Surrounding whitespace is trimmed;
// the match is otherwise exact and case-sensitive.
func Confirm(in io.Reader, out io.Writer, uri string) bool {
	divider := strings.Repeat("=", 60)

	fmt.Fprintln(out, "\n"+divider)
	color.New(color.FgYellow, color.Bold).Fprintln(out, "⚠️  WARNING: DATABASE RESET ⚠️")
	fmt.Fprintln(out, divider)
	fmt.Fprintf(out, "\nThis will DELETE ALL DATA from: %s\n", uri)
	fmt.Fprintln(out, "\nThe following collections will be dropped:")
	for _, name := range expectedCollections {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out, "  - And any other collections in the database")
	fmt.Fprintln(out, "\n"+divider)
	fmt.Fprint(out, "\nAre you sure you want to proceed? Type 'YES' to confirm: ")

	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	return strings.TrimSpace(response) == "YES"
}

// Run verifies connectivity and drops every collection currently present,
// acknowledging each drop in the order the driver enumerates them. There is
// no rollback: a failure mid-loop leaves earlier drops in place.
func (r *Resetter) Run(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return fmt.Errorf("liveness check failed: %w", err)
	}
	color.New(color.FgGreen).Fprintln(r.out, "✅ Successfully connected to MongoDB!")

	collections, err := r.store.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(collections) == 0 {
		fmt.Fprintln(r.out, "\n📭 Database is already empty. No collections to drop.")
		return nil
	}

	fmt.Fprintf(r.out, "\n📋 Found %d collection(s):\n", len(collections))
	for _, name := range collections {
		fmt.Fprintf(r.out, "   - %s\n", name)
	}

	fmt.Fprintln(r.out, "\n🗑️  Dropping collections...")
	for _, name := range collections {
		if err := r.store.DropCollection(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "   ✅ Dropped: %s\n", name)
	}

	divider := strings.Repeat("=", 60)
	fmt.Fprintln(r.out, "\n"+divider)
	color.New(color.FgGreen, color.Bold).Fprintln(r.out, "✅ DATABASE RESET COMPLETE!")
	fmt.Fprintln(r.out, divider)
	fmt.Fprintf(r.out, "\nAll collections in '%s' have been dropped.\n", r.database)
	fmt.Fprintln(r.out, "You can now restart the application with a fresh database.")

	return nil
}

// AdminHint asks whether the operator wants an administrator account and, on
// an affirmative answer, points at the external provisioning command. No
// provisioning happens here.
func AdminHint(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nWould you like to create an admin user? (y/n): ")

	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(response)) == "y" {
		fmt.Fprintln(out, "\n💡 Run 'npm run create-admin' in the application repo to create the admin user.")
	}
}
