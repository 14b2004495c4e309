package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
	"github.com/aulahq/console/core/console"
	"github.com/aulahq/console/storage/restapi"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf    *core.Config
	log     core.Logger
	client  *restapi.Client
	session *core.Session
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -username USERNAME                 - log in; the password is prompted next")
	fmt.Println("  logout                                   - drop the saved session")
	fmt.Println("  list SCREEN [-q TERM]                    - list asignaciones|gestiones|materias|grupos")
	fmt.Println("  assign -docente CODE -materia PID|SIGLA -grupo ID -gestion ID")
	fmt.Println("  rm SCREEN -id ID                         - delete a record after confirmation")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
		loginUname := loginCmd.String("username", "", "The account username. The password will be prompted next.")
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		return cli.login(ctx, *loginUname, string(pwd))

	case "logout":
		return clearSession()

	case "list":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		listCmd := flag.NewFlagSet("list", flag.ExitOnError)
		listQuery := listCmd.String("q", "", "Case-insensitive search over the displayed fields.")
		if err := listCmd.Parse(args[3:]); err != nil {
			return err
		}
		return cli.list(ctx, args[2], *listQuery)

	case "assign":
		assignCmd := flag.NewFlagSet("assign", flag.ExitOnError)
		teacher := assignCmd.String("docente", "", "Teacher code.")
		course := assignCmd.String("materia", "", "Combined PROGRAM|CODE course option.")
		group := assignCmd.Int("grupo", 0, "Group id.")
		termID := assignCmd.Int("gestion", 0, "Term id.")
		if err := assignCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.assign(ctx, *teacher, *course, *group, *termID)

	case "rm":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		rmCmd := flag.NewFlagSet("rm", flag.ExitOnError)
		rmID := rmCmd.String("id", "", "Backend id of the record to delete.")
		if err := rmCmd.Parse(args[3:]); err != nil {
			return err
		}
		if *rmID == "" {
			rmCmd.Usage()
			return errHelp
		}
		return cli.remove(ctx, args[2], *rmID)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, username, password string) error {
	sess, err := cli.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := saveSession(sess); err != nil {
		return err
	}
	*cli.session = sess
	fmt.Printf("Logged in as %s\n", sess.DisplayName())
	return nil
}

func (cli *commandLine) screen(name string) (*console.Screen, error) {
	switch catalog.EntityType(name) {
	case catalog.EntityAssignments:
		return console.NewAssignmentsScreen(cli.client, cli.log), nil
	case catalog.EntityTerms:
		return console.NewTermsScreen(cli.client, cli.log), nil
	case catalog.EntityCourses:
		return console.NewCoursesScreen(cli.client, cli.log), nil
	case catalog.EntityGroups:
		return console.NewGroupsScreen(cli.client, cli.log), nil
	}
	return nil, fmt.Errorf("unknown screen %q", name)
}

func (cli *commandLine) list(ctx context.Context, name, query string) error {
	scr, err := cli.screen(name)
	if err != nil {
		return err
	}
	scr.Mount(ctx)
	scr.SetSearch(query)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch scr.Entity {
	case catalog.EntityAssignments:
		rows := console.FilterAssignmentRows(scr.Store.AssignmentRows(), scr.Search())
		fmt.Fprintln(w, "DOCENTE\tMATERIA\tSIGLA\tGRUPO\tGESTION")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Teacher, r.Course, r.CourseCode, r.Group, r.Term)
		}
	case catalog.EntityTerms:
		terms := console.FilterTerms(scr.Store.Terms(), scr.Search())
		fmt.Fprintln(w, "ID\tANIO\tPERIODO\tINICIO\tFIN\tESTADO")
		for _, r := range console.TermRows(terms, time.Now()) {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
				r.Term.ID, r.Term.Year, r.Term.Period, r.Term.StartDate, r.Term.EndDate, r.Status)
		}
	case catalog.EntityCourses:
		fmt.Fprintln(w, "CARRERA\tSIGLA\tNOMBRE")
		for _, c := range console.FilterCourses(scr.Store.Courses(), scr.Search()) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ProgramID, c.Code, c.Name)
		}
	case catalog.EntityGroups:
		fmt.Fprintln(w, "ID\tNOMBRE")
		for _, g := range console.FilterGroups(scr.Store.Groups(), scr.Search()) {
			fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Name)
		}
	}
	return nil
}

func (cli *commandLine) assign(ctx context.Context, teacher, course string, group, termID int) error {
	scr := console.NewAssignmentsScreen(cli.client, cli.log)
	scr.Mount(ctx)

	draft := &catalog.NewAssignment{TeacherCode: teacher, GroupID: group, TermID: termID}
	if err := draft.SetCourseOption(course); err != nil {
		return err
	}
	if err := scr.Form.OpenCreate(draft); err != nil {
		return err
	}
	if err := scr.Form.Submit(ctx); err != nil {
		var vErr *core.ValidationError
		if errors.As(err, &vErr) {
			for _, fld := range vErr.Fields {
				fmt.Printf("%s: %s\n", fld.Field, fld.Error)
			}
			return errHelp
		}
		return err
	}
	fmt.Println("Assignment created")
	return nil
}

func (cli *commandLine) remove(ctx context.Context, name, id string) error {
	scr, err := cli.screen(name)
	if err != nil {
		return err
	}
	scr.Mount(ctx)

	scr.Delete.RequestDelete(id, id)
	fmt.Printf("Delete %s %q? [y/N] ", name, id)
	var answer string
	_, _ = fmt.Scanln(&answer)
	if answer != "y" && answer != "Y" {
		scr.Delete.Cancel()
		fmt.Println("Cancelled")
		return nil
	}

	if err := scr.Delete.Confirm(ctx); err != nil {
		if core.IsCapabilityError(err) {
			fmt.Printf("%s cannot be deleted from this console\n", name)
			return nil
		}
		return err
	}
	fmt.Println("Deleted")
	return nil
}
