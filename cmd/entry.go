package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pascals/internals"
	"pascals/lexer"
	"pascals/parser"
	"pascals/repl"
)

type (
	CommandFunc func(args []string)

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Flags       []FlagInfo
	}
)

var commands map[string]CommandInfo

func init() {
	commands = map[string]CommandInfo{
		"tokens": {
			Description: "Scans a source file and prints the token stream",
			Function:    Tokens,
			Flags: []FlagInfo{
				{
					Name:        "-f",
					Description: "source file path",
				},
			},
		},
		"parse": {
			Description: "Parses a source file and prints the tree, or every diagnostic",
			Function:    Parse,
			Flags: []FlagInfo{
				{
					Name:        "-f",
					Description: "source file path",
				},
			},
		},
		"repl": {
			Description: "Starts the interactive line-by-line parser",
			Function:    Repl,
			Flags:       []FlagInfo{},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

func Help(args []string) {
	if len(args) < 1 {
		// show the whole help catalog
		printResult := "\n\033[1;35mSupported Commands:\033[0m\n\n"

		for name, cmd := range commands {
			printResult += fmt.Sprintf("  \033[1;36m%v\033[0m\n", name)
			printResult += fmt.Sprintf("    \033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

			if len(cmd.Flags) > 0 {
				printResult += "    \033[1;37mFlags:\033[0m\n"
				for _, flag := range cmd.Flags {
					printResult += fmt.Sprintf("      \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
				}
			}
			printResult += "\n"
		}

		fmt.Println(printResult)
	} else if len(args) == 1 {
		// print the help of the specified command
		cmdName := args[0]

		if _, ok := commands[cmdName]; !ok {
			fmt.Println("ERROR: provided command, isn't supported")
			return
		}

		cmd := commands[cmdName]

		printResult := fmt.Sprintf("\n\033[1;35mCommand:\033[0m \033[1;36m%v\033[0m\n", cmdName)
		printResult += fmt.Sprintf("\033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

		if len(cmd.Flags) > 0 {
			printResult += fmt.Sprintln("\033[1;37mFlags:\033[0m")
			for _, flag := range cmd.Flags {
				printResult += fmt.Sprintf("  \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
			}
		} else {
			printResult += "\033[0;37m(No flags available)\033[0m\n"
		}

		fmt.Println(printResult)
	}
}

// readTarget resolves the -f flag and reads the file behind it.
func readTarget(args []string) (string, string, bool) {
	if len(args) < 2 || args[0] != "-f" {
		fmt.Println("ERROR: provide the filepath flag -f to assign the path to it")
		return "", "", false
	}

	fileTarget := args[1]
	if len(fileTarget) <= 0 {
		fmt.Println("ERROR: provide a valid filepath")
		return "", "", false
	}

	osPath, _ := os.Getwd()
	targetFile := filepath.Join(osPath, fileTarget)

	byteContent, err := os.ReadFile(targetFile)
	if err != nil {
		fmt.Println(err)
		return "", "", false
	}

	return targetFile, string(byteContent), true
}

func Tokens(args []string) {
	targetFile, content, ok := readTarget(args)
	if !ok {
		return
	}

	tokens := lexer.NewLexer(targetFile, content).Tokenize()
	for idx, tok := range tokens {
		tag := tok.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Printf("%4d  %-16s %-12s %q  %d:%d\n",
			idx, tok.Kind, tag, tok.Lexeme, tok.Pos.Line, tok.Pos.Col)
	}
}

func Parse(args []string) {
	targetFile, content, ok := readTarget(args)
	if !ok {
		return
	}

	tokens := lexer.NewLexer(targetFile, content).Tokenize()

	collector := internals.NewErrorCollector()
	for _, tok := range tokens {
		if tok.Kind == lexer.TokenInvalid {
			collector.Add(fmt.Errorf("\033[1;90m%s:%d:%d:\033[0m ERROR: %s: %q",
				targetFile, tok.Pos.Line, tok.Pos.Col, tok.Tag, tok.Lexeme))
		}
	}

	filename, _ := os.Stat(targetFile)
	p := parser.NewParser(tokens, filename.Name())
	tree := p.Parse()
	collector.AddAll(p.Errors)

	if collector.HasErrors() {
		for _, err := range collector.Errors {
			fmt.Println(err)
		}
		return
	}

	fmt.Println("Parsed successfully")
	fmt.Println(tree)
}

func Repl(args []string) {
	repl.Start(os.Stdout)
}

func Execute() {
	if len(os.Args) < 2 {
		fmt.Println("ERROR: at least provide command name to kick off the cli")
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	if _, ok := commands[name]; !ok {
		fmt.Printf("ERROR: unknown command %v, check help for manual.\n", name)
		return
	}

	commands[name].Function(args)
}
