package web

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{block "title" .}}Cloud Portal{{end}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f6f8fa;color:#1f2328;font-size:14px;line-height:1.5}
a{color:#0969da;text-decoration:none}
a:hover{text-decoration:underline}
header{background:#fff;border-bottom:1px solid #d0d7de;padding:8px 16px;display:flex;gap:16px;align-items:center}
header .brand{font-weight:700;font-size:16px;margin-right:auto}
header form{display:inline}
.layout{display:flex;min-height:calc(100vh - 50px)}
aside{width:220px;background:#fff;border-right:1px solid #d0d7de;padding:12px 0}
aside a{display:flex;justify-content:space-between;padding:6px 16px;color:#1f2328}
aside a.active{background:#ddf4ff;color:#0969da;font-weight:600}
main{flex:1;padding:20px}
h1{font-size:20px;margin-bottom:2px}
h2{font-size:13px;font-weight:600;color:#59636e;text-transform:uppercase;letter-spacing:.05em;margin:20px 0 8px}
.sub{color:#59636e;margin-bottom:16px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:12px 16px;min-width:150px}
.card .val{font-size:22px;font-weight:700}
.card .lbl{font-size:12px;color:#59636e}
table{width:100%;border-collapse:collapse;background:#fff;border:1px solid #d0d7de;border-radius:6px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;color:#59636e;font-size:12px}
td{padding:6px 10px;border-bottom:1px solid #eaeef2;vertical-align:top}
.badge{display:inline-block;padding:0 7px;border-radius:10px;font-size:11px;font-weight:600;background:#cf222e;color:#fff}
.tag{display:inline-block;padding:0 6px;border-radius:4px;font-size:12px;background:#eaeef2}
.ok{color:#1a7f37}
.warn{color:#9a6700}
.err{color:#cf222e}
.dim{color:#59636e}
.empty{padding:24px;text-align:center;color:#59636e;background:#fff;border:1px dashed #d0d7de;border-radius:6px}
.filters{display:flex;gap:8px;flex-wrap:wrap;align-items:center;margin-bottom:12px}
.filters select,.filters input{border:1px solid #d0d7de;border-radius:4px;padding:3px 6px;font:inherit}
button{background:#1f883d;border:none;color:#fff;padding:5px 12px;border-radius:4px;cursor:pointer;font:inherit}
button.plain{background:none;color:#0969da;padding:0}
.panel{max-width:460px;margin:40px auto;background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:24px}
.panel label{display:block;margin-top:10px;font-size:12px;color:#59636e}
.panel input{width:100%;border:1px solid #d0d7de;border-radius:4px;padding:5px 8px;font:inherit}
.role{border:1px solid #d0d7de;border-radius:6px;padding:10px;margin-top:8px}
.flash{background:#ffebe9;border:1px solid #ff818266;color:#cf222e;padding:8px 12px;border-radius:6px;margin-bottom:12px}
.note{background:#dafbe1;border:1px solid #4ac26b66;color:#1a7f37;padding:8px 12px;border-radius:6px;margin-bottom:12px}
a.card{display:block;color:inherit}
a.card:hover{text-decoration:none;border-color:#0969da}
form.inline{display:inline}
button.danger{background:#cf222e}
details{margin-bottom:12px}
summary{cursor:pointer;font-weight:600;color:#0969da;margin-bottom:8px}
.request-form{display:grid;grid-template-columns:1fr 1fr;gap:8px 16px;background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:16px}
.request-form label{display:block;font-size:12px;color:#59636e}
.request-form input,.request-form select,.request-form textarea{width:100%;border:1px solid #d0d7de;border-radius:4px;padding:4px 6px;font:inherit}
.request-form .wide{grid-column:span 2}
</style>
</head>
<body>
<header>
  <span class="brand"><a href="/">Cloud Portal</a></span>
  {{block "header" .}}{{end}}
</header>
{{template "content" .}}
</body>
</html>{{end}}
`

// ── Landing ──────────────────────────────────────────────────────────────────

const tmplLanding = `
{{define "header"}}{{if .Session}}<a href="/dashboard">Dashboard</a>{{else}}<a href="/login">Sign in</a>{{end}}{{end}}
{{define "content"}}
<main>
  <h1>Multi-cloud management, one portal</h1>
  <p class="sub">Manage AWS, Azure and Google Cloud resources, requests and spend from a single place.</p>
  <h2>Choose your role</h2>
  <div class="cards">
  {{range .Roles}}
    <div class="card">
      <div class="val">{{.Name}}</div>
      <div class="lbl">{{.Description}}</div>
      <ul>{{range .Features}}<li class="dim">{{.}}</li>{{end}}</ul>
      <a href="/login?role={{.ID}}">Sign in as {{.Name}}</a>
    </div>
  {{end}}
  </div>
  <h2>Connected providers</h2>
  <div class="cards">
  {{range .Providers}}
    <div class="card">
      <div class="val">{{.Name}}</div>
      <div class="lbl">{{.Resources}} resources, {{fmtCost .MonthlyCost}} / month</div>
    </div>
  {{end}}
  </div>
</main>
{{end}}
`

// ── Login ────────────────────────────────────────────────────────────────────

const tmplLogin = `
{{define "title"}}Sign in · Cloud Portal{{end}}
{{define "content"}}
<div class="panel">
  <h1>Sign in</h1>
  <p class="sub">Select a demo role. Any credentials are accepted.</p>
  {{if .Error}}<div class="flash">{{.Error}}</div>{{end}}
  <form method="post" action="/login">
    {{range .Roles}}
    <div class="role">
      <input type="radio" id="role-{{.ID}}" name="role" value="{{.ID}}" style="width:auto"{{if eq (print .ID) $.Selected}} checked{{end}}>
      <strong>{{.Name}}</strong> <span class="dim">{{.Description}}</span>
      <div class="dim">Demo: <code>{{.Credentials.Username}}</code> / <code>{{.Credentials.Password}}</code></div>
    </div>
    {{end}}
    <label for="username">Username</label>
    <input id="username" name="username" value="{{.Username}}" autocomplete="username">
    <label for="password">Password</label>
    <input id="password" name="password" type="password" autocomplete="current-password">
    <p style="margin-top:16px"><button type="submit">Sign in</button></p>
  </form>
</div>
{{end}}
`

// ── Dashboard ────────────────────────────────────────────────────────────────

const tmplDashboard = `
{{define "title"}}{{.Page.Title}} · Cloud Portal{{end}}
{{define "header"}}
  <form method="get" action="/dashboard">
    <input type="hidden" name="tab" value="{{.Page.Tab}}">
    <select name="provider" onchange="this.form.submit()">
      <option value="all"{{if eq .Page.Provider "all"}} selected{{end}}>All providers</option>
      {{range .Providers}}<option value="{{.ID}}"{{if eq .ID $.Page.Provider}} selected{{end}}>{{.Name}}</option>{{end}}
      <option value="add-new">+ Add new service</option>
    </select>
  </form>
  <span class="dim">{{.Session.Username}} ({{.Session.Role.Name}})</span>
  <form method="post" action="/logout"><button class="plain" type="submit">Sign out</button></form>
{{end}}
{{define "content"}}
<div class="layout">
<aside>
  {{range .Page.Navigation}}
  <a href="{{tabURL .Tab $.Page.Provider}}"{{if .Active}} class="active"{{end}}>{{.Label}}{{if .Badge}} <span class="badge">{{.Badge}}</span>{{end}}</a>
  {{end}}
</aside>
<main>
  <h1>{{.Page.Title}}</h1>
  {{if .Page.Subtitle}}<p class="sub">{{.Page.Subtitle}}</p>{{end}}
  {{if .Notice}}<div class="note">{{.Notice}}</div>{{end}}
  {{with .Page.Overview}}{{template "overview" $}}{{end}}
  {{with .Page.Requests}}{{template "requests" $}}{{end}}
  {{with .Page.Infrastructure}}{{template "infrastructure" $}}{{end}}
  {{with .Page.ApprovedServices}}{{template "approved" $}}{{end}}
  {{if .Page.Placeholder}}<div class="empty">{{.Page.Placeholder}}</div>{{end}}
</main>
</div>
{{end}}

{{define "requestHead"}}<th>ID</th><th>Title</th><th>Provider</th><th>Requester</th><th>Priority</th><th>Status</th><th>Cost</th><th>Created</th>{{end}}

{{define "requestCells"}}
    <td><code>{{.ID}}</code></td>
    <td>{{.Title}}<div class="dim">{{.Description}}</div></td>
    <td><span class="tag">{{.Provider}}</span></td>
    <td>{{.Requester}}</td>
    <td>{{.Priority}}</td>
    <td class="{{statusClass (print .Status)}}">{{.Status}}</td>
    <td>{{fmtCost .EstimatedCost}}</td>
    <td>{{fmtDate .CreatedAt}}</td>
{{end}}

{{define "requestRows"}}
<table>
  <tr>{{template "requestHead"}}</tr>
  {{range .}}<tr>{{template "requestCells" .}}</tr>{{end}}
</table>
{{end}}

{{define "overview"}}
{{$v := .Page.Overview}}
<div class="cards">
  <div class="card"><div class="val">{{$v.TotalResources}}</div><div class="lbl">Total resources</div></div>
  <div class="card"><div class="val">{{fmtCost $v.TotalCost}}</div><div class="lbl">Monthly cost ({{$v.Trend}})</div></div>
  <div class="card"><div class="val">{{$v.ActiveUsers}}</div><div class="lbl">Active users</div></div>
  <div class="card"><div class="val">{{printf "%.1f" $v.Uptime}}%</div><div class="lbl">Uptime</div></div>
  <div class="card"><div class="val">{{fmtCost $v.CostSavings}}</div><div class="lbl">Cost savings</div></div>
  <div class="card"><div class="val">{{printf "%.1f" $v.BudgetUsedPercent}}%</div><div class="lbl">of {{fmtCost $v.MonthlyBudget}} budget</div></div>
</div>
<h2>Quick actions</h2>
<div class="cards">
  {{range $v.QuickActions}}<a class="card" href="{{tabURL .Tab $.Page.Provider}}"><strong>{{.Title}}</strong>{{if .Badge}} <span class="badge">{{.Badge}}</span>{{end}}<div class="lbl">{{.Description}}</div></a>{{end}}
</div>
<h2>Providers</h2>
<div class="cards">
  {{range $v.Providers}}<div class="card"><strong>{{.Name}}</strong><div class="lbl">{{.Resources}} resources, {{fmtCost .MonthlyCost}}</div><div class="lbl">{{join .Services}}</div></div>{{end}}
</div>
<h2>Recent requests</h2>
{{template "requestRows" $v.Recent}}
{{if $v.Pending}}<h2>Pending approval</h2>{{template "requestRows" $v.Pending}}{{end}}
{{if $v.Alerts}}
<h2>Cost alerts</h2>
{{range $v.Alerts}}<div class="{{if eq (print .Severity) "high"}}err{{else}}warn{{end}}">{{.Message}} <span class="tag">{{.Provider}}</span></div>{{end}}
{{end}}
{{end}}

{{define "requests"}}
{{$v := .Page.Requests}}
<div class="cards">
  <div class="card"><div class="val">{{$v.Stats.Total}}</div><div class="lbl">Total</div></div>
  <div class="card"><div class="val warn">{{$v.Stats.Pending}}</div><div class="lbl">Pending</div></div>
  <div class="card"><div class="val ok">{{$v.Stats.Approved}}</div><div class="lbl">Approved</div></div>
  <div class="card"><div class="val err">{{$v.Stats.Rejected}}</div><div class="lbl">Rejected</div></div>
</div>
<form class="filters" method="get" action="/dashboard">
  <input type="hidden" name="tab" value="{{.Page.Tab}}">
  <input type="hidden" name="provider" value="{{.Page.Provider}}">
  <input name="q" value="{{.Filters.Query}}" placeholder="Search requests">
  <select name="status">
    {{range $s := list "all" "pending" "approved" "rejected"}}<option value="{{$s}}"{{if eq $s $.Filters.Status}} selected{{end}}>{{$s}}</option>{{end}}
  </select>
  <select name="priority">
    {{range $p := list "all" "low" "medium" "high"}}<option value="{{$p}}"{{if eq $p $.Filters.Priority}} selected{{end}}>{{$p}}</option>{{end}}
  </select>
  <button type="submit">Filter</button>
</form>
{{if $v.CanCreate}}{{template "newRequest" $}}{{end}}
{{if $v.Requests}}
<table>
  <tr>{{template "requestHead"}}{{if $v.CanDecide}}<th>Actions</th>{{end}}</tr>
  {{range $req := $v.Requests}}
  <tr>
    {{template "requestCells" $req}}
    {{if $v.CanDecide}}<td>{{if eq (print $req.Status) "pending"}}
      {{range $d := list "approve" "reject"}}<form class="inline" method="post" action="/dashboard/requests/{{$req.ID}}/{{$d}}">
        <input type="hidden" name="tab" value="{{$.Page.Tab}}">
        <input type="hidden" name="global_provider" value="{{$.Page.Provider}}">
        <button type="submit"{{if eq $d "reject"}} class="danger"{{end}}>{{if eq $d "approve"}}Approve{{else}}Reject{{end}}</button>
      </form>{{end}}
    {{end}}</td>{{end}}
  </tr>
  {{end}}
</table>
{{else}}<div class="empty">No requests found. {{$v.EmptyMessage}}</div>{{end}}
{{end}}

{{define "newRequest"}}
<details>
<summary>New Request</summary>
<form class="request-form" method="post" action="/dashboard/requests">
  <input type="hidden" name="global_provider" value="{{.Page.Provider}}">
  <div class="wide"><label for="title">Title</label><input id="title" name="title" required maxlength="200"></div>
  <div class="wide"><label for="description">Description</label><input id="description" name="description"></div>
  <div><label for="provider">Cloud service</label>
    <select id="provider" name="provider">
      <option value="">Selected provider</option>
      {{range .Providers}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
    </select></div>
  <div><label for="resourceType">Resource type</label>
    <select id="resourceType" name="resourceType">
      <option value="ec2">EC2 Instance</option>
      <option value="s3">S3 Bucket</option>
      <option value="rds">RDS Database</option>
      <option value="lambda">Lambda Function</option>
      <option value="storage">Cloud Storage</option>
      <option value="compute">Compute Instance</option>
    </select></div>
  <div><label for="accessLevel">Access level</label>
    <select id="accessLevel" name="accessLevel">
      <option value="read">Read Only</option>
      <option value="write">Read/Write</option>
      <option value="admin">Administrative</option>
    </select></div>
  <div><label for="manager">Manager</label>
    <select id="manager" name="manager">
      {{range .Managers}}<option value="{{.}}">{{.}}</option>{{end}}
    </select></div>
  <div class="wide"><label for="justification">Justification</label><textarea id="justification" name="justification" rows="3" placeholder="Explain the reason for access"></textarea></div>
  <div><label for="estimatedCost">Estimated monthly cost (USD)</label><input id="estimatedCost" name="estimatedCost" type="number" min="0" step="0.01"></div>
  <div class="wide"><button type="submit">Submit Request</button></div>
</form>
</details>
{{end}}

{{define "infrastructure"}}
{{$v := .Page.Infrastructure}}
<div class="cards">
  <div class="card"><div class="val">{{$v.TotalResources}}</div><div class="lbl">Total resources</div></div>
  <div class="card"><div class="val">{{fmtCost $v.TotalCost}}</div><div class="lbl">Monthly cost</div></div>
  <div class="card"><div class="val">{{$v.ForecastConfidence}}%</div><div class="lbl">Forecast confidence</div></div>
</div>
<form class="filters" method="get" action="/dashboard">
  <input type="hidden" name="tab" value="{{.Page.Tab}}">
  <input type="hidden" name="provider" value="{{.Page.Provider}}">
  <select name="category" onchange="this.form.submit()">
    <option value="all">All providers</option>
    {{range .Providers}}<option value="{{.ID}}"{{if eq .ID $.Filters.Category}} selected{{end}}>{{.Name}}</option>{{end}}
  </select>
</form>
{{if $v.Categories}}
<table>
  <tr><th>Category</th><th>Provider</th><th>Count</th><th>Monthly cost</th></tr>
  {{range $v.Categories}}<tr><td>{{.Name}}</td><td><span class="tag">{{.Provider}}</span></td><td>{{.Count}}</td><td>{{fmtCost .Cost}}</td></tr>{{end}}
</table>
{{else}}<div class="empty">{{$v.EmptyMessage}}</div>{{end}}
<h2>Spend by provider</h2>
<table>
  {{range $v.Shares}}<tr><td>{{.Name}}</td><td>{{fmtCost .Cost}}</td><td>{{printf "%.1f" .Percent}}%</td></tr>{{end}}
</table>
{{end}}

{{define "approved"}}
{{$v := .Page.ApprovedServices}}
<div class="cards">
  <div class="card"><div class="val">{{len $v.Services}}</div><div class="lbl">Approved services</div></div>
  <div class="card"><div class="val">{{fmtCost $v.TotalCost}}</div><div class="lbl">Monthly cost</div></div>
  <div class="card"><div class="val">{{$v.ActiveAccess}}</div><div class="lbl">Active access</div></div>
  <div class="card"><div class="val">{{$v.ThisMonth}}</div><div class="lbl">This month</div></div>
</div>
<form class="filters" method="get" action="/dashboard">
  <input type="hidden" name="tab" value="{{.Page.Tab}}">
  <input type="hidden" name="provider" value="{{.Page.Provider}}">
  <input name="q" value="{{.Filters.Query}}" placeholder="Search services">
  <select name="filter_provider">
    <option value="all">All providers</option>
    {{range .Providers}}<option value="{{.ID}}"{{if eq .ID $.Filters.FilterProvider}} selected{{end}}>{{.Name}}</option>{{end}}
  </select>
  <select name="sort">
    {{range $s := list "newest" "oldest" "cost-high" "cost-low"}}<option value="{{$s}}"{{if eq $s $.Filters.Sort}} selected{{end}}>{{$s}}</option>{{end}}
  </select>
  <button type="submit">Apply</button>
</form>
{{if $v.Services}}{{template "requestRows" $v.Services}}{{else}}<div class="empty">No approved services found. {{$v.EmptyMessage}}</div>{{end}}
{{if $v.Providers}}
<h2>By provider</h2>
<div class="cards">
  {{range $v.Providers}}<div class="card"><strong>{{.Name}}</strong><div class="lbl">{{.Count}} services, {{fmtCost .Cost}}</div></div>{{end}}
</div>
{{end}}
{{end}}
`

// ── Error ────────────────────────────────────────────────────────────────────

const tmplError = `
{{define "title"}}{{.Status}} · Cloud Portal{{end}}
{{define "content"}}
<div class="panel">
  <h1>{{.Status}} {{.StatusText}}</h1>
  <p class="sub">{{.Message}}</p>
  <a href="/dashboard">Back to dashboard</a>
</div>
{{end}}
`
