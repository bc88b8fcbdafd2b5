// Command omenu works with OpenMenuStandard documents: validation,
// template generation, deep links, URL-parameter encoding, and draft
// order generation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/openmenustandard/go-openmenu/internal/catalog"
	"github.com/openmenustandard/go-openmenu/internal/checkout"
	"github.com/openmenustandard/go-openmenu/internal/codec"
	"github.com/openmenustandard/go-openmenu/internal/deeplink"
	"github.com/openmenustandard/go-openmenu/internal/oms"
	"github.com/openmenustandard/go-openmenu/internal/omsfile"
	"github.com/openmenustandard/go-openmenu/internal/validation"
	"github.com/openmenustandard/go-openmenu/pkg/envconfig"
	"github.com/openmenustandard/go-openmenu/pkg/logger"
)

func usage() {
	fmt.Fprintf(os.Stderr, "OpenMenuStandard document tool\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  omenu validate <file>\n")
	fmt.Fprintf(os.Stderr, "  omenu template <vendor-type> [-o <file>]\n")
	fmt.Fprintf(os.Stderr, "  omenu link <file>\n")
	fmt.Fprintf(os.Stderr, "  omenu parse-link <url>\n")
	fmt.Fprintf(os.Stderr, "  omenu encode <file>\n")
	fmt.Fprintf(os.Stderr, "  omenu decode <param> [-o <file>]\n")
	fmt.Fprintf(os.Stderr, "  omenu order <file> [-customer <id>] [-o <file>]\n\n")
	fmt.Fprintf(os.Stderr, "Vendor types for template: restaurant, cafe, fast-food, coffee-shop, pizzeria.\n")
}

func main() {
	log := logger.New(logger.DefaultConfig()).WithComponent("omenu")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := envconfig.Load()

	switch os.Args[1] {
	case "validate":
		runValidate(log, os.Args[2:])
	case "template":
		runTemplate(log, os.Args[2:])
	case "link":
		runLink(log, os.Args[2:])
	case "parse-link":
		runParseLink(log, os.Args[2:])
	case "encode":
		runEncode(log, os.Args[2:])
	case "decode":
		runDecode(log, os.Args[2:])
	case "order":
		runOrder(log, cfg, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func runValidate(log *logger.Logger, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	parseArgs(fs, args, 1)

	doc, err := omsfile.Load(fs.Arg(0))
	if err != nil {
		log.Fatal("document invalid", "file", fs.Arg(0), "error", err)
	}
	log.Info("document valid", "vendor", doc.Vendor.ID, "items", len(doc.Items))
}

func runTemplate(log *logger.Logger, args []string) {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	parseArgs(fs, args, 1)

	doc, err := catalog.Template(fs.Arg(0))
	if err != nil {
		log.Fatal("template failed", "error", err)
	}
	writeDocument(log, doc, *out)
}

func runLink(log *logger.Logger, args []string) {
	fs := flag.NewFlagSet("link", flag.ExitOnError)
	parseArgs(fs, args, 1)

	doc, err := omsfile.Load(fs.Arg(0))
	if err != nil {
		log.Fatal("load failed", "error", err)
	}
	fmt.Println(deeplink.ForDocument(doc))
}

func runParseLink(log *logger.Logger, args []string) {
	fs := flag.NewFlagSet("parse-link", flag.ExitOnError)
	parseArgs(fs, args, 1)

	params, err := deeplink.Parse(fs.Arg(0))
	if err != nil {
		log.Fatal("parse failed", "error", err)
	}
	for key, value := range params {
		fmt.Printf("%s=%s\n", key, value)
	}
}

func runEncode(log *logger.Logger, args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	parseArgs(fs, args, 1)

	doc, err := omsfile.Load(fs.Arg(0))
	if err != nil {
		log.Fatal("load failed", "error", err)
	}
	param, err := codec.EncodeParam(doc)
	if err != nil {
		log.Fatal("encode failed", "error", err)
	}
	fmt.Println(param)
}

func runDecode(log *logger.Logger, args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	parseArgs(fs, args, 1)

	doc, err := codec.DecodeParam(fs.Arg(0))
	if err != nil {
		log.Fatal("decode failed", "error", err)
	}
	writeDocument(log, doc, *out)
}

func runOrder(log *logger.Logger, cfg envconfig.Config, args []string) {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	customer := fs.String("customer", "", "customer id")
	out := fs.String("o", "", "output file (default stdout)")
	parseArgs(fs, args, 1)

	doc, err := omsfile.Load(fs.Arg(0))
	if err != nil {
		log.Fatal("load failed", "error", err)
	}

	gen := checkout.NewGenerator(cfg.TaxRate, cfg.Currency)
	gen.Reprice(doc)
	if err := gen.GenerateOrder(doc, *customer); err != nil {
		log.Fatal("order generation failed", "error", err)
	}
	if err := validation.Document(doc); err != nil {
		log.Fatal("generated document invalid", "error", err)
	}
	writeDocument(log, doc, *out)
}

func parseArgs(fs *flag.FlagSet, args []string, positional int) {
	_ = fs.Parse(args)
	if fs.NArg() < positional {
		usage()
		os.Exit(2)
	}
}

func writeDocument(log *logger.Logger, doc *oms.Document, out string) {
	if out != "" {
		if err := omsfile.Save(doc, out); err != nil {
			log.Fatal("save failed", "file", out, "error", err)
		}
		log.Info("document written", "file", out)
		return
	}
	data, err := codec.Pretty(doc)
	if err != nil {
		log.Fatal("marshal failed", "error", err)
	}
	fmt.Println(string(data))
}
