package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"tbuf/util"
)

var versionString = "Should be set when building, please use build.sh to build"

func printUsage(output io.Writer, flagSet *flag.FlagSet) {
	// This controls where PrintDefaults() prints, see below
	flagSet.SetOutput(output)

	_, _ = fmt.Fprintln(output, "Usage:")
	_, _ = fmt.Fprintln(output, "  embedgen [options] <file>")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Generates a Go source file embedding <file> as a []byte literal.")
	_, _ = fmt.Fprintln(output, "Output file names ending in .gz, .zst or .xz will be compressed.")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Options:")

	flagSet.PrintDefaults()
}

func parseStyleOption(styleOption string, flagSet *flag.FlagSet) *chroma.Style {
	style, ok := styles.Registry[styleOption]
	if !ok {
		fmt.Fprintf(os.Stderr,
			"ERROR: Unrecognized style \"%s\", pick a style from here: https://xyproto.github.io/splash/docs/longer/all.html\n",
			styleOption)
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr, flagSet)

		os.Exit(1)
	}

	return style
}

// printPreview renders source to output, syntax highlighted if output
// is a terminal.
func printPreview(output *os.File, source string, style *chroma.Style) error {
	if !term.IsTerminal(int(output.Fd())) {
		_, err := io.WriteString(output, source)
		return err
	}

	iterator, err := lexers.Get("go").Tokenise(nil, source)
	if err != nil {
		return err
	}
	return formatters.TTY256.Format(output, style, iterator)
}

func main() {
	flagSet := flag.NewFlagSet("", flag.ExitOnError)
	flagSet.Usage = func() {
		printUsage(os.Stdout, flagSet)
	}
	printVersion := flagSet.Bool("version", false, "Prints the embedgen version number")
	debug := flagSet.Bool("debug", false, "Print debug logs")
	trace := flagSet.Bool("trace", false, "Print trace logs")
	outputName := flagSet.String("o", "", "Output file name, stdout if empty")
	packageName := flagSet.String("pkg", "main", "Package name for the generated file")
	varName := flagSet.String("var", "fileData", "Variable name for the embedded data")
	bytesPerLine := flagSet.Int("width", 8, "Byte values per generated line")
	preview := flagSet.Bool("preview", false, "Print a highlighted listing instead of writing output")
	styleOption := flagSet.String("style", "native",
		"Highlighting style for -preview, from https://xyproto.github.io/splash/docs/longer/all.html")

	err := flagSet.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: Command line parsing failed:", err.Error())
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr, flagSet)

		os.Exit(1)
	}

	if *printVersion {
		fmt.Println(versionString)
		os.Exit(0)
	}

	log.SetLevel(log.InfoLevel)
	if *trace {
		log.SetLevel(log.TraceLevel)
	} else if *debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	if len(flagSet.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "ERROR: Expected exactly one input file name, got:", flagSet.Args())
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr, flagSet)

		os.Exit(1)
	}

	if *bytesPerLine < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: -width must be at least 1, got:", *bytesPerLine)
		os.Exit(1)
	}

	inputName := flagSet.Arg(0)
	data, err := os.ReadFile(inputName)
	if err != nil {
		log.Fatal("Failed to read ", inputName, ": ", err)
	}

	buffer := generate(data, generateConfig{
		packageName:  *packageName,
		varName:      *varName,
		sourceName:   filepath.Base(inputName),
		bytesPerLine: *bytesPerLine,
	})

	log.WithFields(log.Fields{
		"inputBytes":  util.FormatNumber(uint64(len(data))),
		"outputBytes": util.FormatNumber(uint64(buffer.Len())),
		"contentHash": fmt.Sprintf("%08x", buffer.Hash()),
	}).Debug("Generated embedding")

	if *preview {
		style := parseStyleOption(*styleOption, flagSet)
		if err := printPreview(os.Stdout, buffer.String(), style); err != nil {
			log.Fatal("Preview failed: ", err)
		}
		return
	}

	if *outputName == "" {
		if _, err := buffer.WriteTo(os.Stdout); err != nil {
			log.Fatal("Failed to write to stdout: ", err)
		}
		return
	}

	writer, err := zCreate(*outputName)
	if err != nil {
		log.Fatal("Failed to create ", *outputName, ": ", err)
	}
	if _, err := buffer.WriteTo(writer); err != nil {
		log.Fatal("Failed to write ", *outputName, ": ", err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal("Failed to finish ", *outputName, ": ", err)
	}
}
