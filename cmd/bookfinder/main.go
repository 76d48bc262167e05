package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"bookfinder/internal/book"
	"bookfinder/internal/config"
	"bookfinder/internal/platform/openlibrary"
	"bookfinder/internal/search"
	"bookfinder/internal/store"
	"bookfinder/internal/wishlist"
)

func main() {
	cfg := config.GetConfig()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := openlibrary.NewClient(cfg.CatalogBaseURL, cfg.CoversBaseURL, cfg.UserAgent, cfg.CatalogRPS)
	svc := search.NewService(client, cfg.SearchLimit)

	switch os.Args[1] {
	case "search":
		runSearch(ctx, cfg, svc, os.Args[2:])
	case "trending":
		runTrending(ctx, svc)
	case "subjects":
		for _, s := range search.PopularSubjects() {
			fmt.Println(s)
		}
	case "wishlist":
		runWishlist(ctx, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: bookfinder <command>

Commands:
  search    -q <text> [-mode title|author] [-genre <genre>] [-sort <key>] [-save N]
  trending  show popular books
  subjects  list the curated genre filters
  wishlist  list | remove <id> | clear | count`)
}

func runSearch(ctx context.Context, cfg *config.Config, svc *search.Service, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "free-text query")
	mode := fs.String("mode", search.ModeTitle, "query mode: title or author")
	genre := fs.String("genre", "", "genre filter")
	sortBy := fs.String("sort", string(book.SortRelevance), "sort order: relevance, title-asc, title-desc, year-asc, year-desc, author-asc, author-desc")
	save := fs.Int("save", 0, "add the Nth result (1-based) to the wishlist")
	_ = fs.Parse(args)

	criteria := search.Criteria{
		Text:   *q,
		Mode:   *mode,
		Genre:  *genre,
		SortBy: book.SortKey(*sortBy),
	}
	if err := criteria.Validate(); err != nil {
		log.Fatalf("invalid search: %v", err)
	}

	books, err := svc.Query(ctx, criteria)
	if err != nil {
		// Expected failures degrade to "no results" rather than aborting.
		log.Printf("search failed: %v", err)
		books = nil
	}
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}
	printBooks(books)

	if *save > 0 {
		if *save > len(books) {
			log.Fatalf("cannot save result %d: only %d results", *save, len(books))
		}
		kv := mustOpenKV(ctx, cfg)
		defer kv.Close()
		ws := wishlist.NewStore(ctx, kv)
		picked := books[*save-1]
		ws.Add(ctx, picked)
		fmt.Printf("Saved %q to wishlist (%d items).\n", picked.Title, ws.Count())
	}
}

func runTrending(ctx context.Context, svc *search.Service) {
	books, err := svc.Trending(ctx)
	if err != nil {
		log.Printf("trending failed: %v", err)
		books = nil
	}
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}
	printBooks(books)
}

func runWishlist(ctx context.Context, cfg *config.Config, args []string) {
	kv := mustOpenKV(ctx, cfg)
	defer kv.Close()
	ws := wishlist.NewStore(ctx, kv)

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		items := ws.Items()
		if len(items) == 0 {
			fmt.Println("Wishlist is empty.")
			return
		}
		printBooks(items)
	case "remove":
		if len(args) < 2 {
			log.Fatal("usage: bookfinder wishlist remove <id>")
		}
		ws.Remove(ctx, args[1])
		fmt.Printf("Wishlist has %d items.\n", ws.Count())
	case "clear":
		ws.Clear(ctx)
		fmt.Println("Wishlist cleared.")
	case "count":
		fmt.Println(ws.Count())
	default:
		log.Fatalf("unknown wishlist command: %s", sub)
	}
}

func mustOpenKV(ctx context.Context, cfg *config.Config) store.KV {
	kv, err := store.NewKV(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	return kv
}

func printBooks(books []book.Book) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tAUTHOR\tYEAR\tID\tSUBJECTS")
	for i, b := range books {
		year := ""
		if b.FirstPublishYear != 0 {
			year = fmt.Sprintf("%d", b.FirstPublishYear)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, b.Title, b.Author, year, b.ID, strings.Join(b.Subjects, ", "))
	}
	_ = w.Flush()
}
