// Command demosite serves a small static site with known SEO properties,
// useful for exercising the analyzer locally without touching the internet:
//
//	go run ./cmd/demosite
//	curl 'localhost:8000/api/v1/analyze?url=http://localhost:9100/'
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"log"
	"net/http"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
	<title>Demo Site for Local Analysis Runs</title>
	<meta name="description" content="A small fixture page with a deliberate mix of passing and failing characteristics.">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<meta property="og:title" content="Demo Site">
	<meta property="og:description" content="Fixture page">
	<link rel="canonical" href="http://localhost:9100/">
	<link rel="icon" href="/favicon.ico">
	<link rel="stylesheet" href="/site.css">
</head>
<body>
	<h1>Demo Site</h1>
	<h2>Sections</h2>
	<p>One image below is missing alt text so the images check warns.</p>
	<img src="/a.png" alt="A descriptive label for the first image">
	<img src="/b.png">
	<a href="/about">About</a>
	<a href="/missing-page">Dead link</a>
</body>
</html>`

func main() {
	addr := flag.String("listen", ":9100", "Address to bind the demo site")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "User-agent: *\nDisallow: /private\nSitemap: http://localhost:9100/sitemap.xml\n")
	})

	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><h1>About</h1></body></html>")
	})

	mux.HandleFunc("/site.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		fmt.Fprint(w, "body { margin: 0; }\n")
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		fmt.Fprint(gz, page)
	})

	log.Printf("demo site listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
