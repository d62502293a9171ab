package notification

import "html/template"

var ticketTemplate = template.Must(template.New("ticket").Parse(`
<div style="font-family: sans-serif; max-width: 520px; margin: 0 auto;">
  <h2>You're in, {{.AttendeeName}}!</h2>
  <p>Your registration for <strong>{{.EventTitle}}</strong> has been approved.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;"><strong>When</strong></td><td>{{.StartsAt}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Where</strong></td><td>{{.Location}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Ticket</strong></td><td><code>{{.TicketCode}}</code></td></tr>
  </table>
  <p>Show this QR code at the entrance:</p>
  <img src="cid:{{.QRContentID}}" alt="Ticket QR code" width="256" height="256"/>
  <p>Or open your ticket directly: <a href="{{.TicketURL}}">{{.TicketURL}}</a></p>
</div>
`))

var rejectionTemplate = template.Must(template.New("rejection").Parse(`
<div style="font-family: sans-serif; max-width: 520px; margin: 0 auto;">
  <h2>Hi {{.AttendeeName}},</h2>
  <p>Unfortunately your registration for <strong>{{.EventTitle}}</strong> was not approved this time.</p>
  <p>Spots are limited and we could not fit everyone in. We hope to see you at a future event!</p>
</div>
`))

var reminderTemplate = template.Must(template.New("reminder").Parse(`
<div style="font-family: sans-serif; max-width: 520px; margin: 0 auto;">
  <h2>Hi {{.AttendeeName}},</h2>
  <p>{{.Lead}}</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;"><strong>When</strong></td><td>{{.StartsAt}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Where</strong></td><td>{{.Location}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Ticket</strong></td><td><code>{{.TicketCode}}</code></td></tr>
  </table>
  <p>Your entry QR code:</p>
  <img src="cid:{{.QRContentID}}" alt="Ticket QR code" width="256" height="256"/>
  <p>Ticket page: <a href="{{.TicketURL}}">{{.TicketURL}}</a></p>
</div>
`))
