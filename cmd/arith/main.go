package main

// This is a demo driver for the arithmetic expression evaluator. It builds a
// few trees and runs every algorithm of the package over them.

import (
	"fmt"
	"os"

	"github.com/letung3105/arith/internal/arith"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := loadConfig()
	exitOnError(err, 78)
	log.SetLevel(cfg.logLevel)

	reporter := arith.NewSimpleReporter(os.Stderr)

	lhs := arith.NewNumberExpr(cfg.left)
	plus := arith.NewBinaryExpr(arith.Plus, lhs, arith.NewNumberExpr(cfg.right))
	run("plus", plus, cfg, reporter)

	lhs.Set(cfg.left * 2)
	run("plus after set", plus, cfg, reporter)

	composed := arith.NewBinaryExpr(
		arith.Divide,
		arith.NewUnaryExpr(arith.UnaryMinus, plus),
		arith.NewBinaryExpr(arith.Minus, arith.NewNumberExpr(cfg.right), lhs),
	)
	run("composed", composed, cfg, reporter)

	exitIf(reporter.HadError(), 70)
}

func run(name string, expr arith.Expr, cfg *config, reporter arith.Reporter) {
	logger := log.WithFields(log.Fields{
		"expr": name,
	})

	val, err := arith.Evaluate(expr)
	if err != nil {
		reporter.Report(err)
		return
	}
	fmt.Println(val)

	if err := arith.NewRpnPrinter(os.Stdout).Print(expr); err != nil {
		reporter.Report(err)
		return
	}

	items, err := arith.Flatten(expr)
	if err != nil {
		reporter.Report(err)
		return
	}
	if cfg.outputJSON {
		data, err := arith.EncodeItems(items)
		if err != nil {
			reporter.Report(err)
			return
		}
		fmt.Println(string(data))
	}

	flat, err := arith.NewStackEvaluator(logger).Evaluate(items)
	if err != nil {
		reporter.Report(err)
		return
	}
	fmt.Println("Flatten evaluate", flat)

	logger.WithFields(log.Fields{
		"tree":  val,
		"stack": flat,
		"items": len(items),
	}).Info("Evaluated expression")
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
