// Package whitelist guards administrative endpoints by client address.
// Patterns are addresses where a '*' matches one octet, e.g. 192.168.1.*.
package whitelist

import (
	"net"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var (
	lock sync.RWMutex
	ips  = map[string]*regexp.Regexp{}
)

func compile(pattern string) (*regexp.Regexp, error) {
	expr := strings.Replace(regexp.QuoteMeta(pattern), `\*`, `[0-9a-fA-F:]+`, -1)
	return regexp.Compile("^" + expr + "$")
}

// Setup replaces the registered patterns with list.
func Setup(list []string) error {
	m := make(map[string]*regexp.Regexp, len(list))
	for _, ip := range list {
		re, err := compile(ip)
		if err != nil {
			return err
		}
		m[ip] = re
	}

	lock.Lock()
	ips = m
	lock.Unlock()
	return nil
}

func VerifyIP(ip string) bool {
	lock.RLock()
	defer lock.RUnlock()

	for _, r := range ips {
		if r.MatchString(ip) {
			return true
		}
	}
	return false
}

// Allow reports whether the request comes from a whitelisted address.
func Allow(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return VerifyIP(host)
}

func RegisterIP(ip string) error {
	lock.Lock()
	defer lock.Unlock()

	if _, ok := ips[ip]; ok {
		return nil
	}

	re, err := compile(ip)
	if err != nil {
		return err
	}
	ips[ip] = re
	return nil
}

func RemoveIP(ip string) {
	lock.Lock()
	defer lock.Unlock()

	delete(ips, ip)
}

// IPList returns the registered patterns, sorted.
func IPList() []string {
	lock.RLock()
	list := make([]string, 0, len(ips))
	for ip := range ips {
		list = append(list, ip)
	}
	lock.RUnlock()

	sort.Strings(list)
	return list
}
