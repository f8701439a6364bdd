package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gkalanidhi/maplens/graph"
	"github.com/gkalanidhi/maplens/lint"
	"github.com/gkalanidhi/maplens/mapping"
)

var serveCmd = &cobra.Command{
	Use:   "serve <mapping.xml>",
	Short: "Launch a web-based mapping viewer",
	Long: `Launch a web viewer for a parsed mapping.

This opens a web interface in your browser where you can:
- See the mapping's headline numbers
- Explore the data flow as a rendered diagram
- Review lint findings
- Fetch the full mapping as JSON

The interface will be available at http://localhost:8080 by default.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadMapping(args[0])
		if err != nil {
			fmt.Printf("❌ Error loading mapping: %v\n", err)
			return
		}

		port := viper.GetString("serve.port")
		if port == "" {
			port = "8080"
		}

		fmt.Printf("🚀 Serving %s on http://localhost:%s\n", m.Name, port)
		fmt.Println("Press Ctrl+C to stop the server")

		if err := startViewer(m, port); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "8080", "Port to run the web server on")
	viper.BindPFlag("serve.port", serveCmd.Flags().Lookup("port"))
}

func startViewer(m *mapping.Mapping, port string) error {
	server := &viewerServer{
		mapping: m,
	}

	http.HandleFunc("/", server.handleIndex)
	http.HandleFunc("/api/mapping", server.handleMapping)
	http.HandleFunc("/api/summary", server.handleSummary)
	http.HandleFunc("/api/lint", server.handleLint)
	http.HandleFunc("/api/graph", server.handleGraph)

	return http.ListenAndServe(":"+port, nil)
}

// viewerServer serves a single parsed mapping, read-only.
type viewerServer struct {
	mapping *mapping.Mapping
}

func (s *viewerServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(viewerHTML))
}

func (s *viewerServer) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *viewerServer) handleMapping(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, s.mapping)
}

func (s *viewerServer) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, s.mapping.Summary())
}

func (s *viewerServer) handleLint(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, lint.Run(s.mapping))
}

func (s *viewerServer) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(graph.MermaidSource(s.mapping)))
}

const viewerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Maplens - Mapping Viewer</title>
    <script src="https://cdn.jsdelivr.net/npm/mermaid@10.6.1/dist/mermaid.min.js"></script>
    <style>
        body {
            margin: 0;
            background-color: #0f172a;
            color: #e2e8f0;
            font-family: ui-sans-serif, system-ui, sans-serif;
        }
        header {
            background-color: #1e293b;
            border-bottom: 1px solid #334155;
            padding: 1rem 1.5rem;
        }
        header h1 {
            margin: 0;
            font-size: 1.25rem;
        }
        header p {
            margin: 0.25rem 0 0;
            color: #94a3b8;
            font-size: 0.875rem;
        }
        main {
            padding: 1.5rem;
            max-width: 72rem;
            margin: 0 auto;
        }
        section {
            background-color: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            padding: 1rem 1.5rem;
            margin-bottom: 1.5rem;
        }
        section h2 {
            margin-top: 0;
            font-size: 1rem;
            color: #94a3b8;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }
        .cards {
            display: flex;
            flex-wrap: wrap;
            gap: 1rem;
        }
        .card {
            background-color: #0f172a;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            padding: 0.75rem 1.25rem;
            min-width: 8rem;
        }
        .card .value {
            font-size: 1.5rem;
            font-weight: bold;
        }
        .card .label {
            color: #94a3b8;
            font-size: 0.75rem;
        }
        #flow {
            background-color: #f8fafc;
            border-radius: 0.5rem;
            padding: 1rem;
            overflow-x: auto;
        }
        .finding {
            padding: 0.375rem 0;
            border-bottom: 1px solid #334155;
            font-size: 0.875rem;
        }
        .finding:last-child {
            border-bottom: none;
        }
        .finding .severity-error { color: #f87171; }
        .finding .severity-warning { color: #fbbf24; }
        .finding .severity-info { color: #60a5fa; }
        pre {
            background-color: #0f172a;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            padding: 1rem;
            overflow-x: auto;
            font-size: 0.8125rem;
            max-height: 24rem;
        }
        .muted { color: #64748b; }
    </style>
</head>
<body>
    <header>
        <h1>Maplens</h1>
        <p id="subtitle">Mapping Viewer</p>
    </header>
    <main>
        <section>
            <h2>Summary</h2>
            <div id="summary" class="cards"><span class="muted">Loading...</span></div>
        </section>
        <section>
            <h2>Data Flow</h2>
            <div id="flow"><span class="muted">Loading...</span></div>
        </section>
        <section>
            <h2>Lint</h2>
            <div id="lint"><span class="muted">Loading...</span></div>
        </section>
        <section>
            <h2>Mapping JSON</h2>
            <pre id="json" class="muted">Loading...</pre>
        </section>
    </main>
    <script>
        mermaid.initialize({ startOnLoad: false });

        function card(label, value) {
            return '<div class="card"><div class="value">' + value + '</div><div class="label">' + label + '</div></div>';
        }

        function findingLine(f) {
            var where = f.transformation || '';
            if (f.port) { where += '.' + f.port; }
            return '<div class="finding"><span class="severity-' + f.severity + '">[' + f.severity + ']</span> ' +
                (where ? '<strong>' + where + '</strong>: ' : '') + f.message + '</div>';
        }

        async function load() {
            var summary = await (await fetch('/api/summary')).json();
            document.getElementById('subtitle').textContent = summary.name + (summary.folder ? ' (' + summary.folder + ')' : '');
            document.getElementById('summary').innerHTML =
                card('Transformations', summary.total_transformations) +
                card('Connections', summary.total_connections) +
                card('Sources', summary.sources) +
                card('Targets', summary.targets);

            var source = await (await fetch('/api/graph')).text();
            var rendered = await mermaid.render('flow-diagram', source);
            document.getElementById('flow').innerHTML = rendered.svg;

            var lint = await (await fetch('/api/lint')).json();
            var findings = lint.errors.concat(lint.warnings).concat(lint.info);
            if (findings.length === 0) {
                document.getElementById('lint').innerHTML = '<span class="muted">No findings.</span>';
            } else {
                document.getElementById('lint').innerHTML = findings.map(findingLine).join('');
            }

            var mapping = await (await fetch('/api/mapping')).json();
            var json = document.getElementById('json');
            json.textContent = JSON.stringify(mapping, null, 2);
            json.classList.remove('muted');
        }

        load().catch(function (err) {
            document.getElementById('summary').innerHTML = '<span class="muted">Failed to load: ' + err + '</span>';
        });
    </script>
</body>
</html>`
