// Package manifest locates, reads and parses the dfx.json manifest of an
// Internet Computer project.
//
// # Manifest Format
//
// Only the top-level "canisters" object is of interest to callers; every
// other field is parsed but left untouched:
//
//	{
//	  "canisters": {
//	    "web3disk_service_backend": {
//	      "type": "motoko",
//	      "main": "src/web3disk_service_backend/src/main.mo"
//	    },
//	    "internet-identity": {
//	      "type": "pull",
//	      "id": "rdmx6-jaaaa-aaaaa-aaadq-cai"
//	    }
//	  }
//	}
//
// # Usage
//
// Load the manifest of a project directory:
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load("/path/to/project")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	canisters, ok := m.Root.Field("canisters").Object()
//
// The parsed document is exposed as a Value, a read-only tagged variant over
// the JSON kinds. Looking up a field that does not exist, or on a value that
// is not an object, yields a null Value instead of failing.
//
// # Error Handling
//
// Load returns a *FileReadError when the file cannot be read and a
// *ParseError when its contents are not valid UTF-8 or not well-formed JSON.
// Both carry the attempted path and unwrap to the underlying cause.
package manifest
